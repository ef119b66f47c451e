package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/zeu5/mcts-sim/util"
)

// TraceRecorder persists episode traces as they are produced
type TraceRecorder interface {
	Record(experiment string, run int, trace *Trace) error
	Close() error
}

// FileRecorder appends traces as json lines, one file per experiment and run
type FileRecorder struct {
	dir string
}

var _ TraceRecorder = &FileRecorder{}

func NewFileRecorder(dir string) (*FileRecorder, error) {
	tracesDir := path.Join(dir, "traces")
	if _, err := os.Stat(tracesDir); err != nil {
		if err := os.MkdirAll(tracesDir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	return &FileRecorder{dir: tracesDir}, nil
}

func (r *FileRecorder) Record(experiment string, run int, trace *Trace) error {
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	tracesFile := path.Join(r.dir, experiment+"_"+strconv.Itoa(run)+".jsonl")
	return util.AppendToFile(tracesFile, string(bs))
}

func (r *FileRecorder) Close() error {
	return nil
}

// RedisRecorder pushes traces onto per experiment redis lists so that runs on
// different machines can be collected centrally
type RedisRecorder struct {
	client *redis.Client
	prefix string
	ctx    context.Context
}

var _ TraceRecorder = &RedisRecorder{}

func NewRedisRecorder(addr string, prefix string) *RedisRecorder {
	return &RedisRecorder{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
		ctx:    context.Background(),
	}
}

func (r *RedisRecorder) Record(experiment string, run int, trace *Trace) error {
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s:%s:%d", r.prefix, experiment, run)
	return r.client.RPush(r.ctx, key, string(bs)).Err()
}

func (r *RedisRecorder) Close() error {
	return r.client.Close()
}
