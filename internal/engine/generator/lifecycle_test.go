package generator_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports/mocks"
	"go.trai.ch/fileslist/internal/engine/generator"
	"go.uber.org/mock/gomock"
)

// countingGenerator returns a generator whose scanner counts its invocations.
func countingGenerator(t *testing.T, name string, calls *int, mu *sync.Mutex) *generator.Generator {
	t.Helper()
	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockFileScanner(ctrl)
	store := mocks.NewMockArtifactStore(ctrl)

	scanner.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, []string, []string) (domain.FileList, error) {
			mu.Lock()
			*calls++
			mu.Unlock()
			return domain.FileList{}, nil
		}).AnyTimes()
	store.EXPECT().Read(gomock.Any()).Return(nil, os.ErrNotExist).AnyTimes()
	store.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	job := defaultJob()
	job.Name = name
	job.Output = filepath.Join("/project", name+".ts")
	return generator.Configure(job, scanner, store, nil, quietLogger(t))
}

func TestLifecycle_BeforeRunWhileIdle(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	lc := generator.NewLifecycle(countingGenerator(t, "a", &calls, &mu))

	assert.Equal(t, domain.PhaseIdle, lc.Phase())

	results, err := lc.BeforeRun(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, domain.PhaseIdle, lc.Phase())
}

func TestLifecycle_WatchSuppressesBeforeRun(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	lc := generator.NewLifecycle(countingGenerator(t, "a", &calls, &mu))
	ctx := context.Background()

	_, err := lc.WatchRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseWatchActive, lc.Phase())
	assert.Equal(t, 1, calls)

	results, err := lc.BeforeRun(ctx)
	require.NoError(t, err)
	assert.Nil(t, results, "pre-build run is skipped during a watch session")
	assert.Equal(t, 1, calls)

	// A watch-triggered rebuild always generates.
	_, err = lc.WatchRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	lc.WatchClose()
	assert.Equal(t, domain.PhaseIdle, lc.Phase())

	_, err = lc.BeforeRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "a build after the session regenerates again")
}

func TestLifecycle_RunsInJobNameOrder(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	lc := generator.NewLifecycle(
		countingGenerator(t, "zeta", &calls, &mu),
		countingGenerator(t, "alpha", &calls, &mu),
		countingGenerator(t, "mid", &calls, &mu),
	)

	results, err := lc.BeforeRun(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "alpha", results[0].Job)
	assert.Equal(t, "mid", results[1].Job)
	assert.Equal(t, "zeta", results[2].Job)
}

func TestLifecycle_FirstErrorStopsPass(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	failing := mocks.NewMockFileScanner(ctrl)
	failing.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrScanFailed)

	job := defaultJob()
	job.Name = "a"
	broken := generator.Configure(job, failing, mocks.NewMockArtifactStore(ctrl), nil, quietLogger(t))

	var calls int
	var mu sync.Mutex
	lc := generator.NewLifecycle(broken, countingGenerator(t, "b", &calls, &mu))

	results, err := lc.WatchRun(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrGenerationFailed.Error())
	assert.Empty(t, results)
	assert.Equal(t, 0, calls, "later jobs do not run after a failure")
	assert.Equal(t, domain.PhaseWatchActive, lc.Phase(), "a failed rebuild keeps the session active")
}

func TestLifecycle_SerializesConcurrentPasses(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	lc := generator.NewLifecycle(countingGenerator(t, "a", &calls, &mu))

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			_, err := lc.WatchRun(context.Background())
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Equal(t, 8, calls)
}

func TestLifecycle_Check(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	lc := generator.NewLifecycle(countingGenerator(t, "a", &calls, &mu), countingGenerator(t, "b", &calls, &mu))

	statuses, err := lc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.ArtifactStatus{
		"a": domain.StatusMissing,
		"b": domain.StatusMissing,
	}, statuses)
}

func TestLifecycle_SharedStateSuppressesAcrossLifecycles(t *testing.T) {
	t.Parallel()

	var calls int
	var mu sync.Mutex
	state := generator.NewWatchState()
	watching := generator.NewSharedLifecycle(state, countingGenerator(t, "a", &calls, &mu))
	oneShot := generator.NewSharedLifecycle(state, countingGenerator(t, "a", &calls, &mu))

	_, err := watching.WatchRun(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseWatchActive, oneShot.Phase())

	results, err := oneShot.BeforeRun(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Equal(t, 1, calls)

	watching.WatchClose()
	assert.Equal(t, domain.PhaseIdle, oneShot.Phase())

	_, err = oneShot.BeforeRun(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
