package services

import (
	"context"
	"fmt"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/schedule"
)

// mockStore implements every store interface the services consume.
// Errors can be injected per operation via the err map, keyed by
// operation name.
type mockStore struct {
	settings      *model.WeekSettings
	registrations []model.Registration
	schedules     map[string]*model.WeekSchedule
	config        *model.AllocationConfig

	cleared   bool
	saveCount int
	err       map[string]error
}

func newMockStore() *mockStore {
	return &mockStore{
		schedules: make(map[string]*model.WeekSchedule),
		err:       make(map[string]error),
	}
}

func (m *mockStore) GetWeekSettings(context.Context) (*model.WeekSettings, error) {
	return m.settings, m.err["GetWeekSettings"]
}

func (m *mockStore) SaveWeekSettings(_ context.Context, settings *model.WeekSettings) error {
	if err := m.err["SaveWeekSettings"]; err != nil {
		return err
	}
	m.settings = settings
	return nil
}

func (m *mockStore) GetRegistrations(context.Context) ([]model.Registration, error) {
	if err := m.err["GetRegistrations"]; err != nil {
		return nil, err
	}
	regs := make([]model.Registration, len(m.registrations))
	copy(regs, m.registrations)
	return regs, nil
}

func (m *mockStore) SaveRegistration(_ context.Context, reg *model.Registration) error {
	if err := m.err["SaveRegistration"]; err != nil {
		return err
	}
	m.saveCount++
	for i := range m.registrations {
		if m.registrations[i].ID == reg.ID {
			m.registrations[i] = *reg
			return nil
		}
	}
	m.registrations = append(m.registrations, *reg)
	return nil
}

func (m *mockStore) DeleteRegistration(_ context.Context, id string) error {
	if err := m.err["DeleteRegistration"]; err != nil {
		return err
	}
	for i := range m.registrations {
		if m.registrations[i].ID == id {
			m.registrations = append(m.registrations[:i], m.registrations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("registration %s not found", id)
}

func (m *mockStore) ClearRegistrations(context.Context) error {
	if err := m.err["ClearRegistrations"]; err != nil {
		return err
	}
	m.registrations = nil
	m.cleared = true
	return nil
}

func (m *mockStore) GetSchedule(_ context.Context, weekOf string) (*model.WeekSchedule, error) {
	if err := m.err["GetSchedule"]; err != nil {
		return nil, err
	}
	return m.schedules[weekOf], nil
}

func (m *mockStore) MergeSchedule(_ context.Context, weekOf string, shifts []model.ShiftAssignment) error {
	if err := m.err["MergeSchedule"]; err != nil {
		return err
	}
	existing := m.schedules[weekOf]
	if existing == nil {
		m.schedules[weekOf] = &model.WeekSchedule{WeekOf: weekOf, Shifts: schedule.Merge(nil, shifts)}
		return nil
	}
	existing.Shifts = schedule.Merge(existing.Shifts, shifts)
	return nil
}

func (m *mockStore) DeleteSchedule(_ context.Context, weekOf string) error {
	if err := m.err["DeleteSchedule"]; err != nil {
		return err
	}
	delete(m.schedules, weekOf)
	return nil
}

func (m *mockStore) GetSchedules(context.Context) ([]model.WeekSchedule, error) {
	if err := m.err["GetSchedules"]; err != nil {
		return nil, err
	}
	var schedules []model.WeekSchedule
	for _, s := range m.schedules {
		schedules = append(schedules, *s)
	}
	return schedules, nil
}

func (m *mockStore) GetAllocationConfig(context.Context) (*model.AllocationConfig, error) {
	return m.config, m.err["GetAllocationConfig"]
}

func (m *mockStore) SaveAllocationConfig(_ context.Context, config *model.AllocationConfig) error {
	if err := m.err["SaveAllocationConfig"]; err != nil {
		return err
	}
	m.config = config
	return nil
}

// mockNotifier records notifications and optionally fails.
type mockNotifier struct {
	notified []string
	err      error
}

func (m *mockNotifier) RegistrationSubmitted(_ context.Context, employeeName string, _ int) error {
	if m.err != nil {
		return m.err
	}
	m.notified = append(m.notified, employeeName)
	return nil
}
