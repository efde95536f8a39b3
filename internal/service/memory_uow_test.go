package service

import (
	"context"
	"sort"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/repository/contract"
	"telehealth-be/internal/repository/specification"
	"telehealth-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// memoryStore backs an in-memory unit of work for service tests. Only the
// repositories the tests exercise are implemented; the rest stay nil.
type memoryStore struct {
	users        []*entity.User
	appointments []*entity.Appointment
	sessions     []*entity.ChatSession
	messages     []*entity.ChatMessage
	nextSeq      int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) addMessage(m *entity.ChatMessage) {
	s.nextSeq++
	m.Seq = s.nextSeq
	s.messages = append(s.messages, m)
}

type memoryFactory struct {
	store *memoryStore
}

func newMemoryFactory(store *memoryStore) unitofwork.RepositoryFactory {
	return &memoryFactory{store: store}
}

func (f *memoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

type memoryUnitOfWork struct {
	store *memoryStore
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return &memoryUserRepository{store: u.store}
}
func (u *memoryUnitOfWork) AppointmentRepository() contract.AppointmentRepository {
	return &memoryAppointmentRepository{store: u.store}
}
func (u *memoryUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return &memoryChatSessionRepository{store: u.store}
}
func (u *memoryUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return &memoryChatMessageRepository{store: u.store}
}

func (u *memoryUnitOfWork) PatientProfileRepository() contract.PatientProfileRepository { return nil }
func (u *memoryUnitOfWork) DoctorProfileRepository() contract.DoctorProfileRepository   { return nil }
func (u *memoryUnitOfWork) MedicalRecordRepository() contract.MedicalRecordRepository   { return nil }
func (u *memoryUnitOfWork) PrescriptionRepository() contract.PrescriptionRepository     { return nil }
func (u *memoryUnitOfWork) LabReportRepository() contract.LabReportRepository           { return nil }
func (u *memoryUnitOfWork) PaymentRepository() contract.PaymentRepository               { return nil }

// Users

type memoryUserRepository struct {
	store *memoryStore
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.ByRole:
			if string(u.Role) != sp.Role {
				return false
			}
		}
	}
	return true
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			r.store.users[i] = user
		}
	}
	return nil
}

func (r *memoryUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memoryUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, _ := r.FindAll(ctx, specs...)
	return int64(len(users)), nil
}

func (r *memoryUserRepository) ActivateUser(ctx context.Context, userId uuid.UUID) error { return nil }
func (r *memoryUserRepository) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	return nil
}
func (r *memoryUserRepository) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	return nil
}
func (r *memoryUserRepository) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	return nil, nil
}
func (r *memoryUserRepository) DeleteEmailVerificationTokensByUserId(ctx context.Context, userId uuid.UUID) error {
	return nil
}
func (r *memoryUserRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	return nil
}
func (r *memoryUserRepository) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	return nil, nil
}
func (r *memoryUserRepository) MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	return nil
}
func (r *memoryUserRepository) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	return nil
}
func (r *memoryUserRepository) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	return nil, nil
}
func (r *memoryUserRepository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return nil
}

// Appointments

type memoryAppointmentRepository struct {
	store *memoryStore
}

func appointmentMatches(a *entity.Appointment, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if a.Id != sp.ID {
				return false
			}
		case specification.ByPatientID:
			if a.PatientId != sp.PatientID {
				return false
			}
		case specification.ByDoctorID:
			if a.DoctorId != sp.DoctorID {
				return false
			}
		case specification.BySlot:
			if a.DoctorId != sp.DoctorID || a.Date != sp.Date || a.TimeSlot != sp.TimeSlot {
				return false
			}
		case specification.ByStatuses:
			found := false
			for _, st := range sp.Statuses {
				if string(a.Status) == st {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *memoryAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.store.appointments = append(r.store.appointments, appointment)
	return nil
}

func (r *memoryAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	for i, a := range r.store.appointments {
		if a.Id == appointment.Id {
			r.store.appointments[i] = appointment
		}
	}
	return nil
}

func (r *memoryAppointmentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	for _, a := range r.store.appointments {
		if appointmentMatches(a, specs) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range r.store.appointments {
		if appointmentMatches(a, specs) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryAppointmentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, _ := r.FindAll(ctx, specs...)
	return int64(len(matches)), nil
}

// Chat sessions

type memoryChatSessionRepository struct {
	store *memoryStore
}

func sessionMatches(s *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

func (r *memoryChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *memoryChatSessionRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	for i, s := range r.store.sessions {
		if s.Id == session.Id {
			r.store.sessions[i] = session
		}
	}
	return nil
}

func (r *memoryChatSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.sessions[:0]
	for _, s := range r.store.sessions {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.sessions = kept
	return nil
}

func (r *memoryChatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.store.sessions {
		if sessionMatches(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memoryChatSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.store.sessions {
		if sessionMatches(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Chat messages

type memoryChatMessageRepository struct {
	store *memoryStore
}

func (r *memoryChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.addMessage(message)
	return nil
}

func (r *memoryChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	orderBySeq := false
	for _, spec := range specs {
		if ob, ok := spec.(specification.OrderBy); ok && ob.Field == "seq" && !ob.Desc {
			orderBySeq = true
		}
	}
	for _, m := range r.store.messages {
		match := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByChatSessionID); ok && m.ChatSessionId != sp.ChatSessionID {
				match = false
				break
			}
		}
		if match {
			out = append(out, m)
		}
	}
	if orderBySeq {
		sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	}
	return out, nil
}

func (r *memoryChatMessageRepository) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}
