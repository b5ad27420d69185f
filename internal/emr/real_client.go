package emr

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	"github.com/aws/aws-sdk-go-v2/service/emr/types"
	"github.com/go-logr/logr"
)

// RealClient implements ClusterAPI against the EMR API.
type RealClient struct {
	client *emr.Client
	log    logr.Logger
}

// NewRealClient wraps an already-resolved AWS configuration. The caller
// owns credential resolution; identity context is passed through as-is.
func NewRealClient(cfg aws.Config, log logr.Logger) *RealClient {
	return &RealClient{
		client: emr.NewFromConfig(cfg),
		log:    log,
	}
}

// NewRealClientFromEnv resolves AWS configuration from the default
// credential chain, or from explicit static credentials when provided
// (accessKeyId, secretAccessKey, optional sessionToken).
func NewRealClientFromEnv(ctx context.Context, region string, creds map[string]string, log logr.Logger) (*RealClient, error) {
	var cfg aws.Config
	var err error

	if len(creds) > 0 {
		accessKeyID := creds["accessKeyId"]
		secretAccessKey := creds["secretAccessKey"]
		if accessKeyID == "" || secretAccessKey == "" {
			return nil, fmt.Errorf("static credentials missing required fields (accessKeyId, secretAccessKey)")
		}
		provider := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, creds["sessionToken"])
		cfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithCredentialsProvider(provider),
		)
	} else {
		cfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewRealClient(cfg, log), nil
}

// DescribeCluster fetches the live cluster attributes.
func (c *RealClient) DescribeCluster(ctx context.Context, clusterID string) (*Cluster, error) {
	c.log.V(1).Info("describing cluster", "clusterId", clusterID)
	out, err := c.client.DescribeCluster(ctx, &emr.DescribeClusterInput{
		ClusterId: aws.String(clusterID),
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("cluster %s: %w", clusterID, ErrClusterNotFound)
		}
		return nil, fmt.Errorf("failed to describe cluster %s: %w", clusterID, err)
	}
	if out.Cluster == nil {
		return nil, fmt.Errorf("cluster %s: %w", clusterID, ErrClusterNotFound)
	}

	cluster := &Cluster{
		ID:               aws.ToString(out.Cluster.Id),
		ConcurrencyLevel: aws.ToInt32(out.Cluster.StepConcurrencyLevel),
		Tags:             make(map[string]string, len(out.Cluster.Tags)),
	}
	if out.Cluster.Status != nil {
		cluster.State = ClusterState(out.Cluster.Status.State)
	}
	for _, tag := range out.Cluster.Tags {
		cluster.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return cluster, nil
}

// ModifyConcurrency asks the cluster to change its step concurrency level.
func (c *RealClient) ModifyConcurrency(ctx context.Context, clusterID string, level int32) error {
	c.log.Info("modifying step concurrency", "clusterId", clusterID, "level", level)
	_, err := c.client.ModifyCluster(ctx, &emr.ModifyClusterInput{
		ClusterId:            aws.String(clusterID),
		StepConcurrencyLevel: aws.Int32(level),
	})
	if err != nil {
		return fmt.Errorf("failed to modify cluster %s: %w", clusterID, err)
	}
	return nil
}

// AddTags attaches tags to the cluster.
func (c *RealClient) AddTags(ctx context.Context, clusterID string, tags map[string]string) error {
	apiTags := make([]types.Tag, 0, len(tags))
	for k, v := range tags {
		apiTags = append(apiTags, types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	_, err := c.client.AddTags(ctx, &emr.AddTagsInput{
		ResourceId: aws.String(clusterID),
		Tags:       apiTags,
	})
	if err != nil {
		return fmt.Errorf("failed to tag cluster %s: %w", clusterID, err)
	}
	return nil
}

// RemoveTags detaches tags from the cluster by key.
func (c *RealClient) RemoveTags(ctx context.Context, clusterID string, keys []string) error {
	_, err := c.client.RemoveTags(ctx, &emr.RemoveTagsInput{
		ResourceId: aws.String(clusterID),
		TagKeys:    keys,
	})
	if err != nil {
		return fmt.Errorf("failed to untag cluster %s: %w", clusterID, err)
	}
	return nil
}
