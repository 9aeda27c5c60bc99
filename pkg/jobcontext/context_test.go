package jobcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobBeginCarriesMetadata(t *testing.T) {
	jobID := uuid.New()
	ctx, cancel := JobBegin(context.Background(), jobID, "standup", 3, time.Minute)
	defer cancel()

	gotID, ok := GetJobID(ctx)
	require.True(t, ok)
	assert.Equal(t, jobID, gotID)

	name, ok := GetTemplateName(ctx)
	require.True(t, ok)
	assert.Equal(t, "standup", name)

	assert.Equal(t, 3, GetWorkerID(ctx))
	assert.Equal(t, 0, GetRetryAttempt(ctx))
	assert.Equal(t, 3, GetMaxRetries(ctx))

	_, ok = GetJobStartTime(ctx)
	assert.True(t, ok)
}

func TestJobEndSuccess(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "", 0, time.Minute)
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestJobEndNonRetryableFailsFast(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "", 0, time.Minute)
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(context.Context) error {
		calls++
		return errors.New("transcript text is empty")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "non-retryable")
}

func TestJobEndRecoversPanic(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "", 0, time.Minute)
	defer cancel()

	err := JobEnd(ctx, func(context.Context) error {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered")
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.True(t, IsRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, IsRetryableError(errors.New("pq: deadlock detected")))
	assert.True(t, IsRetryableError(errors.New("HTTP 429 too many requests")))
	assert.False(t, IsRetryableError(errors.New("invalid template name")))
}
