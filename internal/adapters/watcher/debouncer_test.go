package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetloader/internal/adapters/watcher"
)

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/theme/build/manifest.json")
		d.Add("/plugin/build/asset-manifest.json")
		d.Add("/theme/build/manifest.json")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/plugin/build/asset-manifest.json", "/theme/build/manifest.json"}, calls[0])
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/a/manifest.json")
		time.Sleep(80 * time.Millisecond)
		d.Add("/b/manifest.json")
		time.Sleep(80 * time.Millisecond)
		synctest.Wait()

		assert.Zero(t, callCount, "window restarts on every Add")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_FlushIsSynchronous(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received []string

		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			received = paths
		})

		d.Add("/theme/build/manifest.json")
		d.Flush()

		assert.Equal(t, []string{"/theme/build/manifest.json"}, received)

		received = nil
		d.Flush()
		assert.Nil(t, received, "nothing pending")
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/theme/build/manifest.json")

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
