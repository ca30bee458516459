// Package seed loads demo fixtures from YAML and writes them to the database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/partnerlink/partnerlink/internal/domain"
	"github.com/partnerlink/partnerlink/internal/repository"
)

type Fixture struct {
	Users       []User       `yaml:"users"`
	Vendors     []Vendor     `yaml:"vendors"`
	WorkOrders  []WorkOrder  `yaml:"work_orders"`
	ContactLogs []ContactLog `yaml:"contact_logs"`
	ManualTasks []ManualTask `yaml:"manual_tasks"`
}

type User struct {
	Name  string `yaml:"name"`
	Token string `yaml:"token"`
	Role  string `yaml:"role"`
}

type Vendor struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
	Address   string `yaml:"address"`
	Category  string `yaml:"category"`
	Inactive  bool   `yaml:"inactive"`
}

type WorkOrder struct {
	VendorID    string `yaml:"vendor_id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
}

type ContactLog struct {
	VendorID        string `yaml:"vendor_id"`
	ContactDate     string `yaml:"contact_date"`
	Note            string `yaml:"note"`
	NextFollowUp    string `yaml:"next_follow_up"`
	IsReservation   bool   `yaml:"is_reservation"`
	ReservationTime string `yaml:"reservation_time"`
	QuoteAmount     string `yaml:"quote_amount"`
	Location        string `yaml:"location"`
}

// ManualTask references its owner by user name.
type ManualTask struct {
	Owner       string `yaml:"owner"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	DueDate     string `yaml:"due_date"`
	VendorID    string `yaml:"vendor_id"`
	Completed   bool   `yaml:"completed"`
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates fixture YAML.
func Parse(b []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	users := make(map[string]bool, len(f.Users))
	for i, u := range f.Users {
		if u.Name == "" || u.Token == "" {
			return fmt.Errorf("users[%d]: name and token required", i)
		}
		users[u.Name] = true
	}
	for i, v := range f.Vendors {
		if v.ID == "" {
			return fmt.Errorf("vendors[%d]: id required", i)
		}
	}
	for i, wo := range f.WorkOrders {
		if _, err := domain.ParseDate(wo.Date); err != nil {
			return fmt.Errorf("work_orders[%d]: %w", i, err)
		}
		if wo.Status != "" && !domain.WorkOrderStatus(wo.Status).IsValid() {
			return fmt.Errorf("work_orders[%d]: unknown status %q", i, wo.Status)
		}
	}
	for i, l := range f.ContactLogs {
		if _, err := domain.ParseDate(l.ContactDate); err != nil {
			return fmt.Errorf("contact_logs[%d]: %w", i, err)
		}
		if _, err := optionalDate(l.NextFollowUp); err != nil {
			return fmt.Errorf("contact_logs[%d]: %w", i, err)
		}
		if _, err := optionalDecimal(l.QuoteAmount); err != nil {
			return fmt.Errorf("contact_logs[%d]: %w", i, err)
		}
	}
	for i, t := range f.ManualTasks {
		if !users[t.Owner] {
			return fmt.Errorf("manual_tasks[%d]: unknown owner %q", i, t.Owner)
		}
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("manual_tasks[%d]: %w", i, domain.ErrTitleRequired)
		}
		if t.Priority != "" && !domain.TaskPriority(t.Priority).IsValid() {
			return fmt.Errorf("manual_tasks[%d]: %w", i, domain.ErrInvalidPriority)
		}
		if _, err := optionalDate(t.DueDate); err != nil {
			return fmt.Errorf("manual_tasks[%d]: %w", i, err)
		}
	}
	return nil
}

func optionalDate(s string) (*domain.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid quote amount %q: %w", s, err)
	}
	return &d, nil
}

// Result counts the rows written by Import.
type Result struct {
	Users       int
	Vendors     int
	WorkOrders  int
	ContactLogs int
	ManualTasks int
}

// Import writes the fixture in a single transaction.
func Import(ctx context.Context, pool *pgxpool.Pool, f *Fixture) (*Result, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("failed to rollback seed transaction", "error", err)
		}
	}()

	var (
		res          Result
		userRepo     = repository.NewUserRepository(pool)
		vendorRepo   = repository.NewVendorRepository(pool)
		workOrders   = repository.NewWorkOrderRepository(pool)
		contactLogs  = repository.NewContactLogRepository(pool)
		manualTasks  = repository.NewManualTaskRepository(pool)
		ownersByName = make(map[string]string, len(f.Users))
	)

	for _, u := range f.Users {
		user := &domain.User{Name: u.Name, Token: u.Token, Role: u.Role, IsActive: true}
		if err := userRepo.Create(ctx, tx, user); err != nil {
			return nil, err
		}
		ownersByName[u.Name] = user.ID
		res.Users++
	}

	for _, v := range f.Vendors {
		vendor := &domain.Vendor{
			ID:        v.ID,
			Name:      v.Name,
			AvatarURL: v.AvatarURL,
			Address:   v.Address,
			Category:  v.Category,
			IsActive:  !v.Inactive,
		}
		if err := vendorRepo.Upsert(ctx, tx, vendor); err != nil {
			return nil, err
		}
		res.Vendors++
	}

	for _, w := range f.WorkOrders {
		date, _ := domain.ParseDate(w.Date)
		wo := &domain.WorkOrder{
			VendorID:    w.VendorID,
			Date:        date,
			Description: w.Description,
			Status:      domain.WorkOrderStatus(w.Status),
		}
		if err := workOrders.Create(ctx, tx, wo); err != nil {
			return nil, err
		}
		res.WorkOrders++
	}

	for _, l := range f.ContactLogs {
		contactDate, _ := domain.ParseDate(l.ContactDate)
		followUp, _ := optionalDate(l.NextFollowUp)
		quote, _ := optionalDecimal(l.QuoteAmount)
		log := &domain.ContactLog{
			VendorID:        l.VendorID,
			ContactDate:     contactDate,
			Note:            l.Note,
			NextFollowUp:    followUp,
			IsReservation:   l.IsReservation,
			ReservationTime: l.ReservationTime,
			QuoteAmount:     quote,
			Location:        l.Location,
		}
		if err := contactLogs.Create(ctx, tx, log); err != nil {
			return nil, err
		}
		res.ContactLogs++
	}

	for _, t := range f.ManualTasks {
		task, err := manualTaskFromFixture(t, ownersByName[t.Owner])
		if err != nil {
			return nil, err
		}
		created, err := manualTasks.Create(ctx, tx, task)
		if err != nil {
			return nil, err
		}
		if t.Completed {
			if _, err := manualTasks.UpdateStatus(ctx, tx, created.ID,
				domain.ManualTaskStatusPending, domain.ManualTaskStatusCompleted, &created.CreatedAt); err != nil {
				return nil, err
			}
		}
		res.ManualTasks++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("fixture imported",
		"users", res.Users,
		"vendors", res.Vendors,
		"work_orders", res.WorkOrders,
		"contact_logs", res.ContactLogs,
		"manual_tasks", res.ManualTasks,
	)

	return &res, nil
}

func manualTaskFromFixture(t ManualTask, ownerID string) (*domain.ManualTask, error) {
	due, err := optionalDate(t.DueDate)
	if err != nil {
		return nil, err
	}
	priority := domain.TaskPriority(t.Priority)
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	var vendorID *string
	if t.VendorID != "" {
		vendorID = &t.VendorID
	}
	return &domain.ManualTask{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(t.Title),
		Description: t.Description,
		Priority:    priority,
		DueDate:     due,
		VendorID:    vendorID,
		Status:      domain.ManualTaskStatusPending,
	}, nil
}
