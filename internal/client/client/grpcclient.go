package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/api"
	"github.com/dmitrijs2005/unity/internal/common"
	"github.com/dmitrijs2005/unity/internal/models"
	pb "github.com/dmitrijs2005/unity/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ListingsServiceClient
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. An empty token is allowed
// for the public calls (Ping, Browse, UpgradeOptions).
func NewGRPCClient(endpointURL, token string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: token}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewListingsServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Browse(ctx context.Context, req *api.BrowseRequest) (*BrowsePage, error) {
	resp, err := s.client.Browse(ctx, api.BrowseRequestToProto(req))
	if err != nil {
		return nil, s.mapError(err)
	}
	return &BrowsePage{
		Cards:      api.CardsFromProto(resp.Cards),
		Locations:  resp.Locations,
		Categories: resp.Categories,
	}, nil
}

func (s *GRPCClient) UpgradeOptions(ctx context.Context) ([]models.UpgradeOption, error) {
	resp, err := s.client.ListUpgradeOptions(ctx, &pb.ListUpgradeOptionsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.OptionsFromProto(resp.Options), nil
}

func (s *GRPCClient) MyListings(ctx context.Context) ([]models.Listing, error) {
	resp, err := s.client.MyListings(ctx, &pb.MyListingsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.ListingsFromProto(resp.Listings), nil
}

func (s *GRPCClient) CreateListing(ctx context.Context, req *api.CreateListingRequest) (*models.Listing, error) {
	resp, err := s.client.CreateListing(ctx, api.CreateListingRequestToProto(req))
	if err != nil {
		return nil, s.mapError(err)
	}
	l := api.ListingFromProto(resp.Listing)
	return &l, nil
}

func (s *GRPCClient) ToggleAvailableNow(ctx context.Context, listingID string) (*models.Listing, error) {
	resp, err := s.client.ToggleAvailableNow(ctx, &pb.ToggleAvailableNowRequest{ListingId: listingID})
	if err != nil {
		return nil, s.mapError(err)
	}
	l := api.ListingFromProto(resp.Listing)
	return &l, nil
}

func (s *GRPCClient) PurchaseUpgrade(ctx context.Context, listingID string, kind models.UpgradeKind) (*models.Upgrade, error) {
	resp, err := s.client.PurchaseUpgrade(ctx, &pb.PurchaseUpgradeRequest{ListingId: listingID, UpgradeType: string(kind)})
	if err != nil {
		return nil, s.mapError(err)
	}
	u := api.UpgradeFromProto(resp.Upgrade)
	return &u, nil
}

// ActiveUpgrades lists the unexpired upgrades of any listing.
func (s *GRPCClient) ActiveUpgrades(ctx context.Context, listingID string) ([]models.Upgrade, error) {
	resp, err := s.client.ListActiveUpgrades(ctx, &pb.ListActiveUpgradesRequest{ListingId: listingID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.UpgradesFromProto(resp.Upgrades), nil
}

func (s *GRPCClient) PurchaseHistory(ctx context.Context) ([]models.UpgradePurchase, error) {
	resp, err := s.client.PurchaseHistory(ctx, &pb.PurchaseHistoryRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.PurchasesFromProto(resp.Purchases), nil
}

// mapError keeps the server message next to the sentinel.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	var sentinel error
	switch st.Code() {
	case codes.Unauthenticated:
		sentinel = ErrUnauthorized
	case codes.PermissionDenied:
		sentinel = ErrForbidden
	case codes.NotFound:
		sentinel = ErrNotFound
	case codes.InvalidArgument:
		sentinel = ErrInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded:
		sentinel = ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}
