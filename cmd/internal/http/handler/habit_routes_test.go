package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"personalhub/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitToggle(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/habits", `{"name": "Morning run"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var habit entity.Habit
	decodeInto(t, rec, &habit)
	assert.Equal(t, 0, habit.Streak)
	assert.False(t, habit.CheckedToday)

	toggle := func() entity.Habit {
		rec := doRequest(e, http.MethodPatch,
			fmt.Sprintf("/api/habits/toggle?id=%d", habit.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out entity.Habit
		decodeInto(t, rec, &out)
		return out
	}

	got := toggle()
	assert.True(t, got.CheckedToday)
	assert.Equal(t, 1, got.Streak)

	got = toggle()
	assert.False(t, got.CheckedToday)
	assert.Equal(t, 0, got.Streak)

	got = toggle()
	assert.True(t, got.CheckedToday)
	assert.Equal(t, 1, got.Streak)
}

func TestToggleStreakNeverNegative(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/habits",
		`{"name": "Stretch", "checkedToday": true, "streak": 0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var habit entity.Habit
	decodeInto(t, rec, &habit)
	require.True(t, habit.CheckedToday)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/habits/toggle?id=%d", habit.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.Habit
	decodeInto(t, rec, &got)
	assert.False(t, got.CheckedToday)
	assert.Equal(t, 0, got.Streak)
}

func TestToggleHabitNotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPatch, "/api/habits/toggle?id=42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var apierr struct {
		Code string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "HABIT_NOT_FOUND", apierr.Code)
}

func TestCreateHabitValidation(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/habits", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apierr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "MISSING_NAME", apierr.Code)

	rec = doRequest(e, http.MethodPost, "/api/habits", `{"name": "x", "streak": "five"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "INVALID_STREAK", apierr.Code)
}

func TestUpdateHabitNoFields(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/habits", `{"name": "Read"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var habit entity.Habit
	decodeInto(t, rec, &habit)

	rec = doRequest(e, http.MethodPatch,
		fmt.Sprintf("/api/habits?id=%d", habit.ID), `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apierr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeInto(t, rec, &apierr)
	assert.Equal(t, "NO_UPDATE_FIELDS", apierr.Code)
	assert.Equal(t, "No valid fields to update", apierr.Error)
}

func TestDeleteHabitEnvelope(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/habits", `{"name": "Meditate"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var habit entity.Habit
	decodeInto(t, rec, &habit)

	rec = doRequest(e, http.MethodDelete,
		fmt.Sprintf("/api/habits?id=%d", habit.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Message string       `json:"message"`
		Habit   entity.Habit `json:"habit"`
	}
	decodeInto(t, rec, &envelope)
	assert.Equal(t, "Habit deleted successfully", envelope.Message)
	assert.Equal(t, habit.ID, envelope.Habit.ID)
}
