package service

import (
	"context"
	"testing"

	"availability-api/modules/slot/dto"
	"availability-api/modules/slot/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotRepo struct {
	slots []entity.SlotTemplate
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *entity.SlotTemplate) (*entity.SlotTemplate, error) {
	slot.ID = uuid.New()
	f.slots = append(f.slots, *slot)
	return slot, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SlotTemplate, error) {
	for i := range f.slots {
		if f.slots[i].ID == id {
			s := f.slots[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSlotRepo) GetByEventID(_ context.Context, eventID uuid.UUID) ([]entity.SlotTemplate, error) {
	var out []entity.SlotTemplate
	for _, s := range f.slots {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.slots {
		if f.slots[i].ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestCreateSlotValidation(t *testing.T) {
	svc := NewSlotService(&fakeSlotRepo{})
	ctx := context.Background()
	eventID := uuid.New()

	tests := []struct {
		name string
		req  dto.CreateSlotRequest
		ok   bool
	}{
		{"valid", dto.CreateSlotRequest{DayOfWeek: 2, StartTime: "18:00", EndTime: "20:00"}, true},
		{"valid with seconds", dto.CreateSlotRequest{DayOfWeek: 0, StartTime: "09:00:00", EndTime: "10:30:00"}, true},
		{"day too high", dto.CreateSlotRequest{DayOfWeek: 7, StartTime: "18:00", EndTime: "20:00"}, false},
		{"day negative", dto.CreateSlotRequest{DayOfWeek: -1, StartTime: "18:00", EndTime: "20:00"}, false},
		{"unpadded hour", dto.CreateSlotRequest{DayOfWeek: 2, StartTime: "9:00", EndTime: "10:00"}, false},
		{"hour out of range", dto.CreateSlotRequest{DayOfWeek: 2, StartTime: "24:00", EndTime: "25:00"}, false},
		{"end before start", dto.CreateSlotRequest{DayOfWeek: 2, StartTime: "20:00", EndTime: "18:00"}, false},
		{"end equals start", dto.CreateSlotRequest{DayOfWeek: 2, StartTime: "18:00", EndTime: "18:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, appErr := svc.Create(ctx, eventID, &tt.req)
			if tt.ok {
				require.Nil(t, appErr)
				assert.Equal(t, eventID.String(), resp.EventID)
			} else {
				assert.NotNil(t, appErr)
			}
		})
	}
}

func TestGetByEventIDFiltersAndMaps(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewSlotService(repo)
	ctx := context.Background()
	eventID := uuid.New()

	_, appErr := svc.Create(ctx, eventID, &dto.CreateSlotRequest{DayOfWeek: 4, StartTime: "20:00", EndTime: "22:00", Label: "late"})
	require.Nil(t, appErr)
	_, appErr = svc.Create(ctx, uuid.New(), &dto.CreateSlotRequest{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"})
	require.Nil(t, appErr)

	resp, appErr := svc.GetByEventID(ctx, eventID)
	require.Nil(t, appErr)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 4, resp.Slots[0].DayOfWeek)
	assert.Equal(t, "20:00", resp.Slots[0].StartTime)
	assert.Equal(t, "late", resp.Slots[0].Label)
}
