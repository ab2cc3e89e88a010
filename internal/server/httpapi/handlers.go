package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	"github.com/dmitrijs2005/unity/internal/server/services"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.PingResponse{Status: "OK"})
}

// handleBrowse reads the filters from the query string:
// location, category, available_only and search (or q).
func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	availableOnly := false
	if v := q.Get("available_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "available_only must be a boolean")
			return
		}
		availableOnly = b
	}

	search := q.Get("search")
	if search == "" {
		search = q.Get("q")
	}

	res, err := s.services.Browse.Browse(r.Context(), services.BrowseQuery{
		Location:      q.Get("location"),
		Category:      q.Get("category"),
		AvailableOnly: availableOnly,
		Search:        search,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.BrowseResponse{
		Cards:      api.FromCards(res.Cards),
		Locations:  res.Locations,
		Categories: res.Categories,
	})
}

func (s *Server) handleUpgradeOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.ListUpgradeOptionsResponse{Options: s.services.Upgrades.Options()})
}

func identity(r *http.Request) (models.Identity, error) {
	id, ok := services.IdentityFrom(r.Context())
	if !ok {
		return models.Identity{}, common.ErrorUnauthorized
	}
	return id, nil
}

func (s *Server) handleMyListings(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := s.services.Listings.MyListings(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MyListingsResponse{Listings: api.DerefListings(out)})
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var req api.CreateListingRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	l, err := s.services.Listings.Create(r.Context(), id, services.NewListing{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Images:      req.Images,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.NewListingResponse(l))
}

func (s *Server) handleToggleAvailableNow(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	l, err := s.services.Listings.ToggleAvailableNow(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.NewListingResponse(l))
}

// handlePurchaseUpgrade takes the listing from the path; a listing_id in
// the body is ignored.
func (s *Server) handlePurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var req api.PurchaseUpgradeRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	u, err := s.services.Upgrades.Purchase(r.Context(), id, chi.URLParam(r, "id"), models.UpgradeKind(req.Kind))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.PurchaseUpgradeResponse{Upgrade: *u})
}

func (s *Server) handleActiveUpgrades(w http.ResponseWriter, r *http.Request) {
	out, err := s.services.Upgrades.ActiveFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.ListActiveUpgradesResponse{Upgrades: api.DerefUpgrades(out)})
}

func (s *Server) handlePurchaseHistory(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out, err := s.services.Upgrades.History(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.PurchaseHistoryResponse{Purchases: api.DerefPurchases(out)})
}
