package service

import (
	"context"
	"testing"

	"availability-api/modules/availability/dto"
	"availability-api/modules/availability/entity"
	slotEntity "availability-api/modules/slot/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// setWeek runs SetWeek for the fixture's viewer on the week of Monday
// 2024-06-03. Today inside the fixture is Wednesday 2024-06-05.
func (f *fixture) setWeek(t *testing.T, available bool) *dto.WeekMutationResponse {
	t.Helper()
	resp, appErr := f.svc.SetWeek(context.Background(), f.eventID, &dto.WeekSetRequest{
		UserID:    f.userID.String(),
		WeekStart: "2024-06-03",
		Available: boolPtr(available),
	})
	require.Nil(t, appErr)
	return resp
}

func TestSetWeekWritesVisibleFutureOccurrences(t *testing.T) {
	f := newFixture(1, 3)
	monday := f.addSlot(slotEntity.Monday, "18:00", "20:00")
	f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	f.addSlot(slotEntity.Friday, "20:00", "22:00")

	resp := f.setWeek(t, true)

	// Monday 06-03 is past; only Wednesday and Friday are written
	assert.Equal(t, 2, resp.Updated)
	assert.Empty(t, resp.Failures)
	assert.Equal(t, string(entity.WeekStatusAllTrue), resp.Status)

	require.Len(t, f.votes.votes, 2)
	for _, v := range f.votes.votes {
		assert.True(t, v.Available)
		assert.Equal(t, f.userID, v.UserID)
		assert.NotEqual(t, monday.ID, v.SlotID)
	}

	dates := map[entity.Date]bool{}
	for _, v := range f.votes.votes {
		dates[v.Date] = true
	}
	assert.True(t, dates["2024-06-05"], "wednesday occurrence written")
	assert.True(t, dates["2024-06-07"], "friday occurrence written")
}

func TestSetWeekIdempotent(t *testing.T) {
	f := newFixture(1, 3)
	f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	f.addSlot(slotEntity.Friday, "20:00", "22:00")

	first := f.setWeek(t, true)
	assert.Equal(t, 2, first.Updated)

	second := f.setWeek(t, true)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, string(entity.WeekStatusAllTrue), second.Status)
	assert.Len(t, f.votes.votes, 2)
}

func TestSetWeekOverwritesDifferingVotes(t *testing.T) {
	f := newFixture(1, 3)
	wednesday := f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	friday := f.addSlot(slotEntity.Friday, "20:00", "22:00")

	// Wednesday already matches the target, Friday differs
	f.seedVote(f.userID, wednesday.ID, "2024-06-05", true)
	f.seedVote(f.userID, friday.ID, "2024-06-07", false)

	resp := f.setWeek(t, true)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, string(entity.WeekStatusAllTrue), resp.Status)

	key := entity.VoteKey{UserID: f.userID, EventID: f.eventID, SlotID: friday.ID, Date: "2024-06-07"}
	assert.True(t, f.votes.votes[key].Available)
}

func TestSetWeekFailureIsolation(t *testing.T) {
	f := newFixture(1, 3)
	wednesday := f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	friday := f.addSlot(slotEntity.Friday, "20:00", "22:00")

	f.votes.failWrites[entity.OccurrenceKey{SlotID: wednesday.ID, Date: "2024-06-05"}] = true

	resp := f.setWeek(t, true)

	// the failing write does not block the other one
	assert.Equal(t, 1, resp.Updated)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, wednesday.ID.String(), resp.Failures[0].SlotID)
	assert.Equal(t, "2024-06-05", resp.Failures[0].Date)
	assert.NotEmpty(t, resp.Failures[0].Reason)

	// Wednesday stayed absent, Friday landed: mixed
	assert.Equal(t, string(entity.WeekStatusMixed), resp.Status)

	key := entity.VoteKey{UserID: f.userID, EventID: f.eventID, SlotID: friday.ID, Date: "2024-06-07"}
	_, ok := f.votes.votes[key]
	assert.True(t, ok)
}

func TestSetWeekFullyPastWeek(t *testing.T) {
	f := newFixture(1, 3)
	f.addSlot(slotEntity.Wednesday, "19:00", "21:00")

	resp, appErr := f.svc.SetWeek(context.Background(), f.eventID, &dto.WeekSetRequest{
		UserID:    f.userID.String(),
		WeekStart: "2024-05-20",
		Available: boolPtr(true),
	})
	require.Nil(t, appErr)

	assert.Equal(t, 0, resp.Updated)
	assert.Empty(t, f.votes.votes)
	assert.Equal(t, string(entity.WeekStatusMixed), resp.Status)
}

func TestSetWeekRejectsMalformedInput(t *testing.T) {
	f := newFixture(1, 3)

	_, appErr := f.svc.SetWeek(context.Background(), f.eventID, &dto.WeekSetRequest{
		UserID:    "not-a-uuid",
		WeekStart: "2024-06-03",
		Available: boolPtr(true),
	})
	assert.NotNil(t, appErr)

	_, appErr = f.svc.SetWeek(context.Background(), f.eventID, &dto.WeekSetRequest{
		UserID:    f.userID.String(),
		WeekStart: "June 3rd",
		Available: boolPtr(true),
	})
	assert.NotNil(t, appErr)

	_, appErr = f.svc.SetWeek(context.Background(), f.eventID, &dto.WeekSetRequest{
		UserID:    f.userID.String(),
		WeekStart: "2024-06-03",
	})
	assert.NotNil(t, appErr)
}

func TestClearWeekRemovesVotes(t *testing.T) {
	f := newFixture(1, 3)
	wednesday := f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	friday := f.addSlot(slotEntity.Friday, "20:00", "22:00")

	f.seedVote(f.userID, wednesday.ID, "2024-06-05", true)
	f.seedVote(f.userID, friday.ID, "2024-06-07", false)

	resp, appErr := f.svc.ClearWeek(context.Background(), f.eventID, &dto.WeekClearRequest{
		UserID:    f.userID.String(),
		WeekStart: "2024-06-03",
	})
	require.Nil(t, appErr)

	assert.Equal(t, 2, resp.Updated)
	assert.Empty(t, f.votes.votes)
	assert.Equal(t, string(entity.WeekStatusMixed), resp.Status)
}

func TestClearWeekValueFilter(t *testing.T) {
	f := newFixture(1, 3)
	wednesday := f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	friday := f.addSlot(slotEntity.Friday, "20:00", "22:00")

	f.seedVote(f.userID, wednesday.ID, "2024-06-05", true)
	f.seedVote(f.userID, friday.ID, "2024-06-07", false)

	// clear only the unavailable votes
	resp, appErr := f.svc.ClearWeek(context.Background(), f.eventID, &dto.WeekClearRequest{
		UserID:    f.userID.String(),
		WeekStart: "2024-06-03",
		Available: boolPtr(false),
	})
	require.Nil(t, appErr)

	assert.Equal(t, 1, resp.Updated)
	require.Len(t, f.votes.votes, 1)

	kept := entity.VoteKey{UserID: f.userID, EventID: f.eventID, SlotID: wednesday.ID, Date: "2024-06-05"}
	_, ok := f.votes.votes[kept]
	assert.True(t, ok)
}

func TestClearWeekLeavesOtherUsersAlone(t *testing.T) {
	f := newFixture(1, 3)
	wednesday := f.addSlot(slotEntity.Wednesday, "19:00", "21:00")

	other := f.eventsF.memberships[1].UserID
	f.seedVote(f.userID, wednesday.ID, "2024-06-05", true)
	f.seedVote(other, wednesday.ID, "2024-06-05", true)

	resp, appErr := f.svc.ClearWeek(context.Background(), f.eventID, &dto.WeekClearRequest{
		UserID:    f.userID.String(),
		WeekStart: "2024-06-03",
	})
	require.Nil(t, appErr)

	assert.Equal(t, 1, resp.Updated)
	require.Len(t, f.votes.votes, 1)
	for _, v := range f.votes.votes {
		assert.Equal(t, other, v.UserID)
	}
}

func TestWeekStatusClassification(t *testing.T) {
	f := newFixture(1, 3)
	wednesday := f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	friday := f.addSlot(slotEntity.Friday, "20:00", "22:00")

	ctx := context.Background()
	status := func() string {
		resp, appErr := f.svc.WeekStatus(ctx, f.eventID, f.userID, "2024-06-03")
		require.Nil(t, appErr)
		return resp.Status
	}

	// no votes yet: nothing decisive
	assert.Equal(t, string(entity.WeekStatusMixed), status())

	f.seedVote(f.userID, wednesday.ID, "2024-06-05", true)
	assert.Equal(t, string(entity.WeekStatusMixed), status())

	f.seedVote(f.userID, friday.ID, "2024-06-07", true)
	assert.Equal(t, string(entity.WeekStatusAllTrue), status())

	f.seedVote(f.userID, wednesday.ID, "2024-06-05", false)
	assert.Equal(t, string(entity.WeekStatusMixed), status())

	f.seedVote(f.userID, friday.ID, "2024-06-07", false)
	assert.Equal(t, string(entity.WeekStatusAllFalse), status())
}

func TestWeekStatusEmptyWeek(t *testing.T) {
	f := newFixture(1, 3) // no slots at all

	resp, appErr := f.svc.WeekStatus(context.Background(), f.eventID, f.userID, "2024-06-03")
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.WeekStatusMixed), resp.Status)
}

func TestVisibleWeekOccurrencesOrder(t *testing.T) {
	f := newFixture(1, 3)
	lateFriday := f.addSlot(slotEntity.Friday, "20:00", "22:00")
	f.addSlot(slotEntity.Wednesday, "19:00", "21:00")
	earlyFriday := f.addSlot(slotEntity.Friday, "08:00", "09:00")

	snap, appErr := f.svc.LoadSnapshot(context.Background(), f.eventID, f.userID)
	require.Nil(t, appErr)

	keys := VisibleWeekOccurrences(snap, "2024-06-03", "2024-06-05")
	require.Len(t, keys, 3)

	// dates ascend, and within Friday the 08:00 slot comes before the
	// 20:00 one even though it was stored after it
	assert.Equal(t, entity.Date("2024-06-05"), keys[0].Date)
	assert.Equal(t, entity.Date("2024-06-07"), keys[1].Date)
	assert.Equal(t, entity.Date("2024-06-07"), keys[2].Date)
	assert.Equal(t, earlyFriday.ID, keys[1].SlotID)
	assert.Equal(t, lateFriday.ID, keys[2].SlotID)
}
