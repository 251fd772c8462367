package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/repository/class"
	"course-select/biz/infrastructure/repository/payment"
	"course-select/biz/infrastructure/repository/user"
	"course-select/biz/infrastructure/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// 内存版mapper, 模拟mongo的单文档原子更新语义

type memUserMapper struct {
	mu      sync.Mutex
	users   map[string]*user.User // email -> user
	lookups int32
}

func newMemUserMapper() *memUserMapper {
	return &memUserMapper{users: make(map[string]*user.User)}
}

func (m *memUserMapper) Insert(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	m.users[u.Email] = u
	return nil
}

func (m *memUserMapper) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.AddInt32(&m.lookups, 1)
	u, ok := m.users[email]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func (m *memUserMapper) FindMany(_ context.Context) ([]*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *memUserMapper) UpdateRole(_ context.Context, id string, role string) (*mongo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID.Hex() == id {
			u.Role = role
			u.UpdateTime = time.Now()
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (m *memUserMapper) AddEnrolledClasses(_ context.Context, email string, classIDs []string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	var added int64
	for _, id := range classIDs {
		exists := false
		for _, have := range u.EnrolledClasses {
			if have == id {
				exists = true
				break
			}
		}
		if !exists {
			u.EnrolledClasses = append(u.EnrolledClasses, id)
			added++
		}
	}
	modified := int64(0)
	if added > 0 {
		modified = 1
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (m *memUserMapper) SetEnrolledClasses(_ context.Context, email string, classIDs []string) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	u.EnrolledClasses = classIDs
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUserMapper) AppendPaymentHistory(_ context.Context, email string, entries []user.PaymentEntry) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	u.PaymentHistory = append(u.PaymentHistory, entries...)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type memClassMapper struct {
	mu      sync.Mutex
	classes []*class.Class
}

func (m *memClassMapper) Insert(_ context.Context, c *class.Class) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	m.classes = append(m.classes, c)
	return nil
}

func (m *memClassMapper) FindMany(_ context.Context) ([]*class.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*class.Class{}, m.classes...), nil
}

func (m *memClassMapper) FindByInstructor(_ context.Context, email string) ([]*class.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*class.Class
	for _, c := range m.classes {
		if c.InstructorEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memClassMapper) UpdateStatus(_ context.Context, id string, status string) (*mongo.UpdateResult, error) {
	return m.updateByID(id, func(c *class.Class) { c.Status = status })
}

func (m *memClassMapper) UpdateFeedback(_ context.Context, id string, feedback string) (*mongo.UpdateResult, error) {
	return m.updateByID(id, func(c *class.Class) { c.Feedback = feedback })
}

func (m *memClassMapper) UpdateOffering(_ context.Context, id string, price float64, seats int64) (*mongo.UpdateResult, error) {
	return m.updateByID(id, func(c *class.Class) {
		c.Price = price
		c.AvailableSeats = seats
	})
}

func (m *memClassMapper) updateByID(id string, apply func(*class.Class)) (*mongo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.classes {
		if c.ID.Hex() == id {
			apply(c)
			c.UpdateTime = time.Now()
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type memPaymentMapper struct {
	mu       sync.Mutex
	payments []*payment.Payment
}

func (m *memPaymentMapper) Insert(_ context.Context, p *payment.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
		p.CreateTime = time.Now()
	}
	m.payments = append(m.payments, p)
	return nil
}

func (m *memPaymentMapper) FindByEmail(_ context.Context, email string) ([]*payment.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*payment.Payment
	for _, p := range m.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeGateway struct {
	intent      *util.PaymentIntent
	err         error
	gotAmount   int64
	gotCurrency string
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*util.PaymentIntent, error) {
	f.gotAmount = amount
	f.gotCurrency = currency
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}
