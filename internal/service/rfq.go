package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"capilia/internal/catalog"
	"capilia/internal/model"
	"capilia/internal/repository"
	"capilia/internal/storage"
)

var (
	ErrIDRequired               = errors.New("id is required")
	ErrProductNotFound          = errors.New("product not found")
	ErrRFQNotFound              = errors.New("rfq not found")
	ErrArchiveUnavailable       = errors.New("rfq archive not available")
	ErrInvalidQuantity          = errors.New("quantity must be greater than zero")
	ErrInvalidUnit              = errors.New("unit must be one of kg, g, mt, lb")
	ErrDeliveryLocationRequired = errors.New("delivery location is required")
)

// DefaultUnit applies when a request omits the unit.
const DefaultUnit = "kg"

var validUnits = map[string]bool{"kg": true, "g": true, "mt": true, "lb": true}

// RFQRequest is a quote request for one catalog product.
type RFQRequest struct {
	ProductID        string  `json:"product_id"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	DeliveryLocation string  `json:"delivery_location"`
	Notes            string  `json:"notes"`
}

// RFQListResult is the service-level DTO for paginated RFQs.
type RFQListResult struct {
	Items []model.RFQ `json:"data"`
	Total int         `json:"total"`
}

// RFQService handles quote requests.
type RFQService interface {
	// Submit validates the request, archives it to object storage, then stores it.
	// The archive is removed again when the database insert fails.
	Submit(ctx context.Context, req RFQRequest) (*model.RFQ, error)

	// Get returns an RFQ with a presigned archive URL when one was stored.
	Get(ctx context.Context, id string) (*model.RFQ, error)

	// List returns RFQs newest first.
	List(ctx context.Context, limit, offset int) (*RFQListResult, error)

	// Archive streams the archived JSON document of an RFQ.
	Archive(ctx context.Context, id string) (io.ReadCloser, storage.Document, error)
}

type rfqService struct {
	store         storage.Archive
	repo          repository.RFQRepository
	presignExpiry time.Duration
}

// NewRFQService constructs an RFQService. A nil store disables archiving.
func NewRFQService(store storage.Archive, repo repository.RFQRepository, presignExpiry time.Duration) RFQService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &rfqService{store: store, repo: repo, presignExpiry: presignExpiry}
}

func (req *RFQRequest) normalize() error {
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.DeliveryLocation = strings.TrimSpace(req.DeliveryLocation)
	req.Notes = strings.TrimSpace(req.Notes)
	req.Unit = strings.ToLower(strings.TrimSpace(req.Unit))
	if req.Unit == "" {
		req.Unit = DefaultUnit
	}

	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !validUnits[req.Unit] {
		return ErrInvalidUnit
	}
	if req.DeliveryLocation == "" {
		return ErrDeliveryLocationRequired
	}
	return nil
}

func (s *rfqService) Submit(ctx context.Context, req RFQRequest) (*model.RFQ, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		return nil, ErrProductNotFound
	}

	rfq := &model.RFQ{
		ID:               uuid.New().String(),
		ProductID:        product.ID,
		ProductName:      product.Name,
		Manufacturer:     product.Manufacturer,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		DeliveryLocation: req.DeliveryLocation,
		Notes:            req.Notes,
		CreatedAt:        time.Now().UTC().Truncate(time.Millisecond),
	}

	if s.store != nil {
		key := storage.RFQKey(rfq.ID)
		if _, err := s.store.PutJSON(ctx, key, rfq, map[string]string{"product-id": product.ID}); err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
		rfq.ArchiveKey = key
	}

	stored, err := s.repo.Create(ctx, rfq)
	if err != nil {
		if rfq.ArchiveKey != "" {
			if delErr := s.store.Remove(ctx, rfq.ArchiveKey); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *rfqService) find(ctx context.Context, id string) (*model.RFQ, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rfq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRFQNotFound
		}
		return nil, err
	}
	return rfq, nil
}

func (s *rfqService) Get(ctx context.Context, id string) (*model.RFQ, error) {
	rfq, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.store != nil && rfq.ArchiveKey != "" {
		u, err := s.store.SignedURL(ctx, rfq.ArchiveKey, s.presignExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign archive: %w", err)
		}
		rfq.ArchiveURL = u
	}
	return rfq, nil
}

func (s *rfqService) List(ctx context.Context, limit, offset int) (*RFQListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RFQListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *rfqService) Archive(ctx context.Context, id string) (io.ReadCloser, storage.Document, error) {
	rfq, err := s.find(ctx, id)
	if err != nil {
		return nil, storage.Document{}, err
	}
	if s.store == nil || rfq.ArchiveKey == "" {
		return nil, storage.Document{}, ErrArchiveUnavailable
	}
	rc, doc, err := s.store.Open(ctx, rfq.ArchiveKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, storage.Document{}, ErrArchiveUnavailable
	}
	return rc, doc, err
}
