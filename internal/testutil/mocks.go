package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fitgate/fitgate/internal/domain/plan"
	"github.com/fitgate/fitgate/internal/domain/user"
	"github.com/fitgate/fitgate/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:  make(map[int64]*user.User),
		NextID: 1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.Users[u.ID] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	email = strings.ToLower(email)
	for _, u := range m.Users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User")
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Users[u.ID]; !ok {
		return errors.NotFound("User")
	}
	u.UpdatedAt = time.Now()
	m.Users[u.ID] = u
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	delete(m.Users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	ids := make([]int64, 0, len(m.Users))
	for id := range m.Users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []*user.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(result) >= limit {
			break
		}
		result = append(result, m.Users[id])
	}
	return result, int64(len(m.Users)), nil
}

func (m *MockUserRepository) ExpireGuests(ctx context.Context) (int64, error) {
	var n int64
	now := time.Now()
	for id, u := range m.Users {
		if u.IsGuest() && u.GuestExpiresAt != nil && u.GuestExpiresAt.Before(now) {
			delete(m.Users, id)
			n++
		}
	}
	return n, nil
}

func (m *MockUserRepository) LapsePastDue(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range m.Users {
		if u.SubscriptionStatus == "past_due" {
			u.SubscriptionStatus = "inactive"
			n++
		}
	}
	return n, nil
}

// MockPlanRepository is a mock implementation of plan.Repository
type MockPlanRepository struct {
	Plans       map[int64]*plan.Plan
	NextID      int64
	CreateError error
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{
		Plans:  make(map[int64]*plan.Plan),
		NextID: 1,
	}
}

func (m *MockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	p.ID = m.NextID
	m.NextID++
	p.CreatedAt = time.Now()
	m.Plans[p.ID] = p
	return nil
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id int64) (*plan.Plan, error) {
	p, ok := m.Plans[id]
	if !ok {
		return nil, errors.NotFound("Plan")
	}
	return p, nil
}

func (m *MockPlanRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*plan.Plan, int64, error) {
	var all []*plan.Plan
	for _, p := range m.Plans {
		if p.UserID == userID {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

// MockCompleter is a canned providers.Completer
type MockCompleter struct {
	Response string
	Err      error
	Calls    int
}

func (m *MockCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
