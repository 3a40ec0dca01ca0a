package client

import (
	"context"
	"net/url"
	"time"

	"hoteladmin/pkg/model"
)

// RoomServiceClient forwards room CRUD to the external room service. Replies
// are relayed verbatim; the only transformation is shaping the create payload.
// Calls are bounded by a single short timeout - no retries, no backoff.
type RoomServiceClient struct {
	httpClient *HttpClient
}

func NewRoomServiceClient(baseURL string, timeout time.Duration) *RoomServiceClient {
	return &RoomServiceClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

func (c *RoomServiceClient) List(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/rooms")
}

// newRoomPayload deliberately has no _id field: the room service owns
// identifier assignment, and any client-supplied id must not leak through.
type newRoomPayload struct {
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	BookedBy    *string `json:"bookedBy"`
	Maintenance bool    `json:"maintenance"`
}

// Create shapes the admin payload into a fresh room document and forwards it.
func (c *RoomServiceClient) Create(ctx context.Context, req *model.NewRoomRequest) (*Response, error) {
	room := newRoomPayload{
		Number:      req.Number,
		Type:        req.Type,
		Price:       req.Price,
		Available:   true,
		BookedBy:    nil,
		Maintenance: false,
	}
	return c.httpClient.POST(ctx, "/api/rooms", room)
}

func (c *RoomServiceClient) Update(ctx context.Context, id string, rawBody []byte) (*Response, error) {
	return c.httpClient.PATCHRaw(ctx, "/api/rooms/"+url.PathEscape(id), rawBody)
}

func (c *RoomServiceClient) SetMaintenance(ctx context.Context, id string, rawBody []byte) (*Response, error) {
	return c.httpClient.PATCHRaw(ctx, "/api/rooms/"+url.PathEscape(id)+"/maintenance", rawBody)
}

func (c *RoomServiceClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, "/api/rooms/"+url.PathEscape(id))
}
