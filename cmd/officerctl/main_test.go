package main

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeedDemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	var created []*models.Incident

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			created = append(created, inc)
			return nil
		}).Times(8)

	n, err := seedDemo(context.Background(), repoMock, 3)

	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "Excessive Force During Traffic Stop", created[0].Title)
	assert.Equal(t, "Incident Report #6", created[5].Title)
}

func TestSeedDemo_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	gomock.InOrder(
		repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
	)

	n, err := seedDemo(context.Background(), repoMock, 0)

	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestOptional(t *testing.T) {
	args := []string{"a", "b"}
	assert.Equal(t, "b", optional(args, 1))
	assert.Equal(t, "", optional(args, 5))
}
