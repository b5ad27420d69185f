package emr

import (
	"context"
)

// MockClient is a func-field implementation of ClusterAPI for tests.
// Unset funcs make the corresponding call fail loudly via nil dereference,
// which keeps tests honest about which calls they expect.
type MockClient struct {
	DescribeClusterFunc   func(ctx context.Context, clusterID string) (*Cluster, error)
	ModifyConcurrencyFunc func(ctx context.Context, clusterID string, level int32) error
	AddTagsFunc           func(ctx context.Context, clusterID string, tags map[string]string) error
	RemoveTagsFunc        func(ctx context.Context, clusterID string, keys []string) error

	// Call counters, useful for asserting zero-remote-call invariants.
	DescribeCalls int
	ModifyCalls   int
	AddTagCalls   int
	RemoveCalls   int
}

var _ ClusterAPI = (*MockClient)(nil)

func (m *MockClient) DescribeCluster(ctx context.Context, clusterID string) (*Cluster, error) {
	m.DescribeCalls++
	return m.DescribeClusterFunc(ctx, clusterID)
}

func (m *MockClient) ModifyConcurrency(ctx context.Context, clusterID string, level int32) error {
	m.ModifyCalls++
	return m.ModifyConcurrencyFunc(ctx, clusterID, level)
}

func (m *MockClient) AddTags(ctx context.Context, clusterID string, tags map[string]string) error {
	m.AddTagCalls++
	return m.AddTagsFunc(ctx, clusterID, tags)
}

func (m *MockClient) RemoveTags(ctx context.Context, clusterID string, keys []string) error {
	m.RemoveCalls++
	return m.RemoveTagsFunc(ctx, clusterID, keys)
}

// TotalCalls sums all remote calls issued through the mock.
func (m *MockClient) TotalCalls() int {
	return m.DescribeCalls + m.ModifyCalls + m.AddTagCalls + m.RemoveCalls
}
