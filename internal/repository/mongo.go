package repository

import (
	"context"
	"time"

	"gift-card-checker-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const submissionCollection = "data_entries"

// submissionDoc is the MongoDB document shape for a submission.
type submissionDoc struct {
	OID         primitive.ObjectID `bson:"_id,omitempty"`
	InputData   string             `bson:"input_data"`
	Balance     float64            `bson:"balance"`
	DateChecked time.Time          `bson:"date_checked"`
}

func (d submissionDoc) toModel() models.Submission {
	return models.Submission{
		OID:         d.OID.Hex(),
		InputData:   d.InputData,
		Balance:     d.Balance,
		DateChecked: d.DateChecked,
	}
}

// MongoRepository stores submissions in a single MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(submissionCollection)}
}

// Migrate creates the date_checked index used by List. Run once at boot.
func (r *MongoRepository) Migrate(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "date_checked", Value: -1}},
	}
	_, err := r.coll.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (r *MongoRepository) Create(ctx context.Context, s *models.Submission) error {
	doc := submissionDoc{
		InputData:   s.InputData,
		Balance:     s.Balance,
		DateChecked: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.OID = oid.Hex()
	}
	s.DateChecked = doc.DateChecked
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Submission, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date_checked", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []submissionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	submissions := make([]models.Submission, 0, len(docs))
	for _, doc := range docs {
		submissions = append(submissions, doc.toModel())
	}
	return submissions, nil
}

func (r *MongoRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *MongoRepository) ExistsByCard(ctx context.Context, cardNumber string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "input_data", Value: cardNumber}})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoRepository) DeleteByCard(ctx context.Context, cardNumber string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "input_data", Value: cardNumber}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

func (r *MongoRepository) Name() string {
	return "mongodb"
}
