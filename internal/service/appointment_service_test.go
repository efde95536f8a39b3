package service

import (
	"context"
	"testing"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRejectsDoubleBooking(t *testing.T) {
	store := newMemoryStore()
	doctor := &entity.User{Id: uuid.New(), Email: "doctor@example.com", FullName: "Dr. Example", Role: entity.UserRoleDoctor}
	patient := &entity.User{Id: uuid.New(), Email: "patient@example.com", FullName: "Pat One", Role: entity.UserRolePatient}
	rival := &entity.User{Id: uuid.New(), Email: "rival@example.com", FullName: "Pat Two", Role: entity.UserRolePatient}
	store.users = append(store.users, doctor, patient, rival)

	svc := NewAppointmentService(newMemoryFactory(store), nil, nil, "", noopLogger{})

	req := &dto.BookAppointmentRequest{
		DoctorId: doctor.Id,
		Date:     "2026-09-07",
		TimeSlot: "09:00 AM",
		Reason:   "checkup",
	}

	booked, err := svc.Book(context.Background(), patient.Id, req)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusPending), booked.Status)

	_, err = svc.Book(context.Background(), rival.Id, req)
	require.Error(t, err)
	httpErr, ok := err.(*serverutils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 409, httpErr.Code)

	// A different slot on the same day is free.
	other := &dto.BookAppointmentRequest{
		DoctorId: doctor.Id,
		Date:     "2026-09-07",
		TimeSlot: "10:00 AM",
	}
	_, err = svc.Book(context.Background(), rival.Id, other)
	require.NoError(t, err)
}

func TestBookAllowsSlotAfterCancellation(t *testing.T) {
	store := newMemoryStore()
	doctor := &entity.User{Id: uuid.New(), Email: "doctor@example.com", FullName: "Dr. Example", Role: entity.UserRoleDoctor}
	patient := &entity.User{Id: uuid.New(), Email: "patient@example.com", FullName: "Pat One", Role: entity.UserRolePatient}
	store.users = append(store.users, doctor, patient)

	svc := NewAppointmentService(newMemoryFactory(store), nil, nil, "", noopLogger{})

	req := &dto.BookAppointmentRequest{
		DoctorId: doctor.Id,
		Date:     "2026-09-08",
		TimeSlot: "01:00 PM",
	}

	_, err := svc.Book(context.Background(), patient.Id, req)
	require.NoError(t, err)

	// CANCELLED no longer blocks the calendar cell.
	store.appointments[0].Status = entity.AppointmentStatusCancelled

	_, err = svc.Book(context.Background(), patient.Id, req)
	require.NoError(t, err)
}

func TestBookUnknownDoctor(t *testing.T) {
	store := newMemoryStore()
	patient := &entity.User{Id: uuid.New(), Email: "patient@example.com", FullName: "Pat One", Role: entity.UserRolePatient}
	store.users = append(store.users, patient)

	svc := NewAppointmentService(newMemoryFactory(store), nil, nil, "", noopLogger{})

	_, err := svc.Book(context.Background(), patient.Id, &dto.BookAppointmentRequest{
		DoctorId: uuid.New(),
		Date:     "2026-09-08",
		TimeSlot: "01:00 PM",
	})
	require.Error(t, err)
	httpErr, ok := err.(*serverutils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Code)
}
