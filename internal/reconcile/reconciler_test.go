package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/podssh/internal/inventory"
	"github.com/imamik/podssh/internal/sshconfig"
)

type fakeSource struct {
	instances []inventory.Instance
	err       error
	calls     int
}

func (f *fakeSource) ListInstances(_ context.Context) ([]inventory.Instance, error) {
	f.calls++
	return f.instances, f.err
}

var testTemplate = sshconfig.Template{User: "root", IdentityFile: "~/.ssh/id_ed25519"}

func sshInstance(id, name, addr string, port int) inventory.Instance {
	return inventory.Instance{
		ID:          id,
		DisplayName: name,
		Runtime: &inventory.Runtime{Ports: []inventory.EndpointMapping{
			{ContainerPort: 8888, HostAddress: "100.65.0.1", HostPort: 60000},
			{ContainerPort: 22, HostAddress: addr, HostPort: port},
		}},
	}
}

func newTestReconciler(t *testing.T, src inventory.Source, opts ...Option) (*Reconciler, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runpod")
	return New(src, Options{Provider: "runpod", Template: testTemplate, Path: path}, opts...), path
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	for i := 1; i <= 4; i++ {
		src.instances = append(src.instances, sshInstance(
			fmt.Sprintf("p%d", i), fmt.Sprintf("pod %d", i), fmt.Sprintf("203.0.113.%d", i), 40000+i))
	}
	src.instances = append(src.instances, inventory.Instance{ID: "broken", DisplayName: "stopped pod"})

	r, path := newTestReconciler(t, src)
	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Written)
	assert.Equal(t, 5, report.InstanceCount)
	assert.Len(t, report.Document.Blocks, 4)
	assert.Equal(t, []string{"pod_1", "pod_2", "pod_3", "pod_4"}, report.Document.Names())

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "broken", failures[0].ID)
	assert.Equal(t, StatusFailed, failures[0].Status())
	assert.Contains(t, failures[0].Error, "runtime not available")

	var extractErr *inventory.ExtractError
	assert.True(t, errors.As(failures[0].Err, &extractErr))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(report.Document.Bytes()), string(content))
	assert.NotContains(t, string(content), "stopped")
}

func TestRun_StatusPerInstance(t *testing.T) {
	t.Parallel()

	src := &fakeSource{instances: []inventory.Instance{
		sshInstance("a", "with ssh", "203.0.113.1", 1022),
		{ID: "b", DisplayName: "web only", Runtime: &inventory.Runtime{Ports: []inventory.EndpointMapping{
			{ContainerPort: 8888, HostAddress: "203.0.113.2", HostPort: 8888},
		}}},
		{ID: "c", DisplayName: "no ports", Runtime: &inventory.Runtime{}},
	}}

	r, _ := newTestReconciler(t, src)
	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Instances, 3)
	assert.Equal(t, StatusFound, report.Instances[0].Status())
	assert.Equal(t, "with_ssh", report.Instances[0].Name)
	assert.Equal(t, StatusNoEndpoint, report.Instances[1].Status())
	assert.Equal(t, StatusFailed, report.Instances[2].Status())
	assert.Len(t, report.Endpoints(), 1)
}

func TestRun_FetchErrorWritesNothing(t *testing.T) {
	t.Parallel()

	src := &fakeSource{err: errors.New("401 unauthorized")}
	written := false
	r, path := newTestReconciler(t, src, WithWriteFunc(func(string, *sshconfig.Document) error {
		written = true
		return nil
	}))

	report, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to list instances")
	assert.Contains(t, err.Error(), "401 unauthorized")
	assert.False(t, written)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_WriteErrorKeepsPreviousFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "runpod")
	previous := "Host old\n  User root\n  Hostname 198.51.100.1\n  Port 22\n  IdentityFile ~/.ssh/id_ed25519\n"
	require.NoError(t, os.WriteFile(path, []byte(previous), 0600))

	src := &fakeSource{instances: []inventory.Instance{sshInstance("a", "new", "203.0.113.1", 1022)}}
	r := New(src, Options{Provider: "runpod", Template: testTemplate, Path: path},
		WithWriteFunc(func(string, *sshconfig.Document) error {
			return errors.New("disk full")
		}))

	report, err := r.Run(context.Background())
	require.Error(t, err)
	require.NotNil(t, report)
	assert.False(t, report.Written)
	assert.Len(t, report.Document.Blocks, 1)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, previous, string(content))
}

func TestRun_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "runpod")
	src := &fakeSource{instances: []inventory.Instance{sshInstance("a", "a", "203.0.113.1", 1022)}}

	report, err := New(src, Options{Template: testTemplate, Path: path}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write ssh config")
	assert.False(t, report.Written)
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	src := &fakeSource{instances: []inventory.Instance{
		sshInstance("a", "alpha", "203.0.113.1", 1022),
		sshInstance("b", "beta", "203.0.113.2", 2022),
	}}
	r, path := newTestReconciler(t, src)

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, src.calls)
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	src := &fakeSource{instances: []inventory.Instance{sshInstance("a", "alpha", "203.0.113.1", 1022)}}
	called := false
	path := filepath.Join(t.TempDir(), "runpod")
	r := New(src, Options{Provider: "runpod", Template: testTemplate, Path: path, DryRun: true},
		WithWriteFunc(func(string, *sshconfig.Document) error {
			called = true
			return nil
		}))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, called)
	assert.False(t, report.Written)
	assert.True(t, report.DryRun)
	assert.Len(t, report.Document.Blocks, 1)
}

func TestRun_Collisions(t *testing.T) {
	t.Parallel()

	src := &fakeSource{instances: []inventory.Instance{
		sshInstance("a", "gpu box", "203.0.113.1", 1022),
		sshInstance("b", "gpu_box", "203.0.113.2", 2022),
	}}
	r, _ := newTestReconciler(t, src)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Collisions, 1)
	require.Len(t, report.Document.Blocks, 1)
	assert.Equal(t, "203.0.113.2", report.Document.Blocks[0].Hostname)
}

func TestReport_Replaced(t *testing.T) {
	t.Parallel()

	src := &fakeSource{instances: []inventory.Instance{
		sshInstance("a", "gpu box", "203.0.113.1", 1022),
		sshInstance("b", "other", "203.0.113.5", 5022),
		sshInstance("c", "gpu_box", "203.0.113.2", 2022),
	}}
	r, _ := newTestReconciler(t, src)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, report.Replaced())

	kept := 0
	for i, ep := range report.Endpoints() {
		if report.Replaced()[i] {
			continue
		}
		kept++
		block, ok := report.Document.Lookup(ep.Name)
		require.True(t, ok)
		assert.Equal(t, ep.Address, block.Hostname)
	}
	assert.Equal(t, len(report.Document.Blocks), kept)
}

func TestRun_EmptyInventory(t *testing.T) {
	t.Parallel()

	r, path := newTestReconciler(t, &fakeSource{})
	require.NoError(t, os.WriteFile(path, []byte("Host stale\n"), 0600))

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}
