package services

import (
	"context"
	"testing"

	"github.com/doctorportal/api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorImageRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewDoctorService(store.NewMemory())

	image := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	_, err := svc.Register(ctx, "Dr. A", "a@x.com", image)
	require.NoError(t, err)

	doctors, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. A", doctors[0].Name)
	assert.Equal(t, "a@x.com", doctors[0].Email)
	assert.Equal(t, image, doctors[0].Image)
}

func TestListDoctorsEmpty(t *testing.T) {
	svc := NewDoctorService(store.NewMemory())
	doctors, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doctors)
}
