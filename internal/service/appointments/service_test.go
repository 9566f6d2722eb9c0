package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eh-co/CryoBookingService/internal/domain"
	appointmentRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/appointment"
	"github.com/eh-co/CryoBookingService/internal/service/appointments/models"
)

type appointmentRepoMock struct {
	getByID       func(ctx context.Context, id string) (*domain.Appointment, error)
	list          func(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error)
	updateStatus  func(ctx context.Context, id string, status domain.AppointmentStatus) error
	delete        func(ctx context.Context, id string) error
	countByDate   func(ctx context.Context, date time.Time) (int, error)
	countByStatus func(ctx context.Context, status domain.AppointmentStatus) (int, error)
	countAll      func(ctx context.Context) (int, error)
	revenue       func(ctx context.Context, statuses []domain.AppointmentStatus) (float64, error)
}

func (m *appointmentRepoMock) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return m.getByID(ctx, id)
}

func (m *appointmentRepoMock) List(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error) {
	return m.list(ctx, filter, today)
}

func (m *appointmentRepoMock) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	return m.updateStatus(ctx, id, status)
}

func (m *appointmentRepoMock) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

func (m *appointmentRepoMock) CountByDate(ctx context.Context, date time.Time) (int, error) {
	return m.countByDate(ctx, date)
}

func (m *appointmentRepoMock) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error) {
	return m.countByStatus(ctx, status)
}

func (m *appointmentRepoMock) CountAll(ctx context.Context) (int, error) {
	return m.countAll(ctx)
}

func (m *appointmentRepoMock) Revenue(ctx context.Context, statuses []domain.AppointmentStatus) (float64, error) {
	return m.revenue(ctx, statuses)
}

type notifierMock struct {
	confirmed []*domain.Appointment
}

func (m *notifierMock) AppointmentConfirmed(appt *domain.Appointment) {
	m.confirmed = append(m.confirmed, appt)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type loggerMock struct{}

func (l *loggerMock) Info(format string, v ...interface{})  {}
func (l *loggerMock) Warn(format string, v ...interface{})  {}
func (l *loggerMock) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:           "a6f3b0c2-0000-4000-8000-000000000001",
		PatientName:  "Max Mustermann",
		PatientEmail: "max@example.com",
		PatientPhone: "+49 30 1234567",
		ServiceID:    "cooling-30",
		ServiceName:  "Kälteanwendung 30 Min",
		Price:        90,
		Date:         time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TimeSlot:     "10:00",
		Status:       status,
	}
}

func newTestService(repo *appointmentRepoMock, notifier *notifierMock) *Service {
	svc := NewService(repo, notifier, &loggerMock{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestList_FilterPassing(t *testing.T) {
	var gotFilter domain.AppointmentListFilter
	var gotToday time.Time

	repo := &appointmentRepoMock{
		list: func(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error) {
			gotFilter = filter
			gotToday = today
			return []*domain.Appointment{testAppointment(domain.StatusPending)}, nil
		},
	}

	resp, err := newTestService(repo, &notifierMock{}).List(context.Background(),
		&models.ListAppointmentsRequest{Filter: "today"})
	require.NoError(t, err)

	assert.Equal(t, domain.FilterToday, gotFilter)
	assert.Equal(t, testNow, gotToday)
	assert.Equal(t, 1, resp.Total)
}

func TestList_EmptyFilterMeansAll(t *testing.T) {
	var gotFilter domain.AppointmentListFilter
	repo := &appointmentRepoMock{
		list: func(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	_, err := newTestService(repo, &notifierMock{}).List(context.Background(),
		&models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, gotFilter)
}

func TestList_UnknownFilter(t *testing.T) {
	repo := &appointmentRepoMock{
		list: func(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error) {
			t.Fatal("repository must not be called for an unknown filter")
			return nil, nil
		},
	}

	_, err := newTestService(repo, &notifierMock{}).List(context.Background(),
		&models.ListAppointmentsRequest{Filter: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ConfirmSendsNotification(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	repo := &appointmentRepoMock{
		getByID: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return appt, nil
		},
		updateStatus: func(ctx context.Context, id string, status domain.AppointmentStatus) error {
			assert.Equal(t, domain.StatusConfirmed, status)
			return nil
		},
	}
	notifier := &notifierMock{}

	resp, err := newTestService(repo, notifier).UpdateStatus(context.Background(), appt.ID,
		&models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, appt.ID, notifier.confirmed[0].ID)
}

func TestUpdateStatus_CancelDoesNotNotify(t *testing.T) {
	repo := &appointmentRepoMock{
		getByID: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return testAppointment(domain.StatusPending), nil
		},
		updateStatus: func(ctx context.Context, id string, status domain.AppointmentStatus) error {
			return nil
		},
	}
	notifier := &notifierMock{}

	_, err := newTestService(repo, notifier).UpdateStatus(context.Background(), "id",
		&models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Empty(t, notifier.confirmed)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	cases := []struct {
		from domain.AppointmentStatus
		to   string
	}{
		{domain.StatusPending, "completed"},
		{domain.StatusCancelled, "confirmed"},
		{domain.StatusCompleted, "cancelled"},
	}

	for _, tc := range cases {
		repo := &appointmentRepoMock{
			getByID: func(ctx context.Context, id string) (*domain.Appointment, error) {
				return testAppointment(tc.from), nil
			},
			updateStatus: func(ctx context.Context, id string, status domain.AppointmentStatus) error {
				t.Fatalf("update must not run for %s -> %s", tc.from, tc.to)
				return nil
			},
		}

		_, err := newTestService(repo, &notifierMock{}).UpdateStatus(context.Background(), "id",
			&models.UpdateStatusRequest{Status: tc.to})
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &appointmentRepoMock{
		getByID: func(ctx context.Context, id string) (*domain.Appointment, error) {
			t.Fatal("repository must not be called for an unknown status")
			return nil, nil
		},
	}

	_, err := newTestService(repo, &notifierMock{}).UpdateStatus(context.Background(), "id",
		&models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &appointmentRepoMock{
		getByID: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}

	_, err := newTestService(repo, &notifierMock{}).UpdateStatus(context.Background(), "missing",
		&models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &appointmentRepoMock{
		delete: func(ctx context.Context, id string) error {
			return appointmentRepo.ErrAppointmentNotFound
		},
	}

	err := newTestService(repo, &notifierMock{}).Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestStats(t *testing.T) {
	var revenueStatuses []domain.AppointmentStatus

	repo := &appointmentRepoMock{
		countByDate: func(ctx context.Context, date time.Time) (int, error) {
			switch date.Format(domain.DateFormat) {
			case "2026-03-11":
				return 4, nil
			case "2026-03-10":
				return 2, nil
			default:
				return 0, nil
			}
		},
		countByStatus: func(ctx context.Context, status domain.AppointmentStatus) (int, error) {
			assert.Equal(t, domain.StatusPending, status)
			return 3, nil
		},
		countAll: func(ctx context.Context) (int, error) {
			return 42, nil
		},
		revenue: func(ctx context.Context, statuses []domain.AppointmentStatus) (float64, error) {
			revenueStatuses = statuses
			return 1230.5, nil
		},
	}

	resp, err := newTestService(repo, &notifierMock{}).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TodayAppointments)
	assert.Equal(t, 2, resp.YesterdayAppointments)
	assert.Equal(t, 42, resp.TotalAppointments)
	assert.Equal(t, 3, resp.PendingAppointments)
	assert.Equal(t, 1230.5, resp.Revenue)

	// Выручка только по подтвержденным и завершенным
	assert.ElementsMatch(t, []domain.AppointmentStatus{domain.StatusConfirmed, domain.StatusCompleted}, revenueStatuses)
}
