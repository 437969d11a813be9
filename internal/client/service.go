// AngelaMos | 2026
// service.go

package client

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateClientRequest,
) (*Client, error) {
	c := &Client{
		ID:      uuid.New().String(),
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) GetByID(
	ctx context.Context,
	userID, id string,
) (*Client, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Client, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateClientRequest,
) (*Client, error) {
	c := &Client{
		ID:      id,
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// ExportCSV writes every client for the user as CSV rows with a header line.
func (s *Service) ExportCSV(
	ctx context.Context,
	userID string,
	w io.Writer,
) error {
	clients, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := []string{
		"name", "phone", "email", "address", "city", "state", "zip",
		"created_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range clients {
		record := []string{
			c.Name,
			c.Phone,
			c.Email,
			c.Address,
			c.City,
			c.State,
			c.Zip,
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}
