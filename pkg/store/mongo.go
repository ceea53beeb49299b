package store

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anpham6/squared-sub012/pkg/cache"
	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/errors"
)

const (
	// DefaultMongoDatabase is used when the URI names no database.
	DefaultMongoDatabase = "squared"

	// RunsCollection holds one document per run.
	RunsCollection = "runs"
)

// runRecord is the stored form of a run. Summary fields are kept as
// top-level fields for indexing and listing; the full result travels as
// its JSON encoding.
type runRecord struct {
	ID           string    `bson:"_id"`
	Document     string    `bson:"document,omitempty"`
	DocumentHash string    `bson:"document_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	Tolerance    float64   `bson:"tolerance"`
	SupportRTL   bool      `bson:"support_rtl"`
	Anchors      int       `bson:"anchors"`
	Gravity      int       `bson:"gravity"`
	Payload      []byte    `bson:"payload"`
}

func (r runRecord) summary() Summary {
	return Summary{
		ID:           r.ID,
		Document:     r.Document,
		DocumentHash: r.DocumentHash,
		CreatedAt:    r.CreatedAt,
		Anchors:      r.Anchors,
		Gravity:      r.Gravity,
	}
}

// MongoStore stores runs in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	runs   *mongo.Collection
	owned  bool
}

// NewMongoStore connects to uri and prepares the runs collection in
// database db (DefaultMongoDatabase if empty). The initial ping is retried
// with backoff.
func NewMongoStore(ctx context.Context, uri, db string) (*MongoStore, error) {
	if err := errors.ValidateURI(uri, "mongodb", "mongodb+srv"); err != nil {
		return nil, err
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid mongodb URI")
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return &cache.RetryableError{Err: fmt.Errorf("%w: %v", cache.ErrNetwork, err)}
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to reach mongodb")
	}

	s, err := NewMongoStoreFromClient(ctx, client, db)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	s.owned = true
	return s, nil
}

// NewMongoStoreFromClient uses an existing client. Close does not
// disconnect a client the store did not create.
func NewMongoStoreFromClient(ctx context.Context, client *mongo.Client, db string) (*MongoStore, error) {
	if db == "" {
		db = DefaultMongoDatabase
	}
	runs := client.Database(db).Collection(RunsCollection)
	_, err := runs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "document_hash", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "create run indexes")
	}
	return &MongoStore{client: client, runs: runs}, nil
}

func (s *MongoStore) Save(ctx context.Context, res *document.Result) (err error) {
	start := time.Now()
	defer func() { timed(ctx, "save", "mongo", resultID(res), start, err) }()

	if err := validateResult(res); err != nil {
		return err
	}
	payload, err := document.MarshalResult(res)
	if err != nil {
		return err
	}
	rec := runRecord{
		ID:           res.ID,
		Document:     res.Document,
		DocumentHash: res.DocumentHash,
		CreatedAt:    res.CreatedAt,
		Tolerance:    res.Options.Tolerance,
		SupportRTL:   res.Options.SupportRTL,
		Anchors:      len(res.Anchors),
		Gravity:      len(res.Gravity),
		Payload:      payload,
	}
	_, err = s.runs.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "save run %s", rec.ID)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (res *document.Result, err error) {
	start := time.Now()
	defer func() { timed(ctx, "get", "mongo", id, start, err) }()

	var rec runRecord
	if err := s.runs.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(id)
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "get run %s", id)
	}
	return document.ReadResult(bytes.NewReader(rec.Payload))
}

func (s *MongoStore) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	filter := bson.M{}
	if opts.DocumentHash != "" {
		filter["document_hash"] = opts.DocumentHash
	}
	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(opts.limit())).
		SetProjection(bson.M{"payload": 0})

	cur, err := s.runs.Find(ctx, filter, find)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list runs")
	}
	var recs []runRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list runs")
	}
	out := make([]Summary, len(recs))
	for i, r := range recs {
		out[i] = r.summary()
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.runs.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "delete run %s", id)
	}
	return nil
}

// Close disconnects the client if the store created it.
func (s *MongoStore) Close() error {
	if !s.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
