package services

import (
	"context"
	"errors"
	"testing"

	"github.com/doctorportal/api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2021-12-05":           "2021-12-05",
		"12/5/2021":            "2021-12-05",
		"December 5, 2021":     "2021-12-05",
		"2021-12-05T09:30:00Z": "2021-12-05",
		"not a date":           "not a date",
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDate(in), "input %q", in)
	}
}

func TestBookThenListRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(store.NewMemory())

	_, err := svc.Book(ctx, bson.M{
		"email":     "patient@example.com",
		"date":      "12/5/2021",
		"treatment": "Teeth Cleaning",
	})
	require.NoError(t, err)

	// The stored date is canonical, so both spellings of the day match.
	for _, date := range []string{"2021-12-05", "12/5/2021"} {
		got, err := svc.ListByEmailAndDate(ctx, "patient@example.com", date)
		require.NoError(t, err)
		require.Len(t, got, 1, "date %q", date)
		assert.Equal(t, "Teeth Cleaning", got[0]["treatment"])
		assert.Equal(t, "2021-12-05", got[0]["date"])
	}

	got, err := svc.ListByEmailAndDate(ctx, "other@example.com", "2021-12-05")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(store.NewMemory())

	id, err := svc.Book(ctx, bson.M{"email": "patient@example.com", "date": "2021-12-05"})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "patient@example.com", found["email"])

	_, err = svc.GetByID(ctx, primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = svc.GetByID(ctx, "not-a-hex-id")
	assert.True(t, errors.Is(err, ErrInvalidID))
}

func TestAttachPayment(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := NewAppointmentService(mem)

	id, err := svc.Book(ctx, bson.M{"email": "patient@example.com", "date": "2021-12-05"})
	require.NoError(t, err)

	result, err := svc.AttachPayment(ctx, id, bson.M{"transactionId": "txn_123", "amount": 1999})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.MatchedCount)

	found, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	payment, ok := found["payment"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "txn_123", payment["transactionId"])

	_, err = svc.AttachPayment(ctx, "bad-id", bson.M{})
	assert.True(t, errors.Is(err, ErrInvalidID))
}
