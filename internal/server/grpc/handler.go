package grpc

import (
	"context"

	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/models"
	pb "github.com/dmitrijs2005/unity/internal/proto"
	"github.com/dmitrijs2005/unity/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Browse(ctx context.Context, req *pb.BrowseRequest) (*pb.BrowseResponse, error) {
	res, err := s.services.Browse.Browse(ctx, services.BrowseQuery{
		Location:      req.Location,
		Category:      req.Category,
		AvailableOnly: req.AvailableOnly,
		Search:        req.Search,
	})
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}

	return &pb.BrowseResponse{
		Cards:      api.CardsToProto(res.Cards),
		Locations:  res.Locations,
		Categories: res.Categories,
	}, nil
}

func (s *GRPCServer) ListUpgradeOptions(ctx context.Context, req *pb.ListUpgradeOptionsRequest) (*pb.ListUpgradeOptionsResponse, error) {
	return &pb.ListUpgradeOptionsResponse{Options: api.OptionsToProto(s.services.Upgrades.Options())}, nil
}

// caller returns the identity set by accessTokenInterceptor.
func caller(ctx context.Context) (models.Identity, error) {
	id, ok := services.IdentityFrom(ctx)
	if !ok {
		return models.Identity{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) MyListings(ctx context.Context, req *pb.MyListingsRequest) (*pb.MyListingsResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.services.Listings.MyListings(ctx, id)
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}
	return &pb.MyListingsResponse{Listings: api.ListingsToProto(out)}, nil
}

func (s *GRPCServer) CreateListing(ctx context.Context, req *pb.CreateListingRequest) (*pb.ListingResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.services.Listings.Create(ctx, id, services.NewListing{
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
		return nil, toStatus(ctx, s.logger, err)
	}

	return &pb.ListingResponse{Listing: api.ListingToProto(*l)}, nil
}

func (s *GRPCServer) ToggleAvailableNow(ctx context.Context, req *pb.ToggleAvailableNowRequest) (*pb.ListingResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	l, err := s.services.Listings.ToggleAvailableNow(ctx, id, req.ListingId)
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}
	return &pb.ListingResponse{Listing: api.ListingToProto(*l)}, nil
}

func (s *GRPCServer) PurchaseUpgrade(ctx context.Context, req *pb.PurchaseUpgradeRequest) (*pb.PurchaseUpgradeResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.services.Upgrades.Purchase(ctx, id, req.ListingId, models.UpgradeKind(req.UpgradeType))
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}
	return &pb.PurchaseUpgradeResponse{Upgrade: api.UpgradeToProto(*u)}, nil
}

func (s *GRPCServer) ListActiveUpgrades(ctx context.Context, req *pb.ListActiveUpgradesRequest) (*pb.ListActiveUpgradesResponse, error) {
	if req.ListingId == "" {
		return nil, status.Error(codes.InvalidArgument, "listing_id is required")
	}

	out, err := s.services.Upgrades.ActiveFor(ctx, req.ListingId)
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}
	return &pb.ListActiveUpgradesResponse{Upgrades: api.UpgradesToProto(out)}, nil
}

func (s *GRPCServer) PurchaseHistory(ctx context.Context, req *pb.PurchaseHistoryRequest) (*pb.PurchaseHistoryResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.services.Upgrades.History(ctx, id)
	if err != nil {
		return nil, toStatus(ctx, s.logger, err)
	}
	return &pb.PurchaseHistoryResponse{Purchases: api.PurchasesToProto(out)}, nil
}
