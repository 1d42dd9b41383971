package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
)

const transportCollection = "transports"

type MongoTransportRepository struct {
	coll *mongo.Collection
}

func NewTransportRepository(db *mongo.Database) *MongoTransportRepository {
	return &MongoTransportRepository{coll: db.Collection(transportCollection)}
}

type mongoTransport struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CanBeRented   bool               `bson:"can_be_rented"`
	TransportType string             `bson:"transport_type"`
	Model         string             `bson:"model"`
	Color         string             `bson:"color"`
	Identifier    string             `bson:"identifier"`
	Description   string             `bson:"description"`
	Latitude      float64            `bson:"latitude"`
	Longitude     float64            `bson:"longitude"`
	MinutePrice   *float64           `bson:"minute_price,omitempty"`
	DayPrice      *float64           `bson:"day_price,omitempty"`
}

func (r *MongoTransportRepository) Create(ctx context.Context, t *domain.Transport) (*domain.Transport, error) {
	doc := fromTransport(t)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert transport: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toTransport(doc), nil
}

func (r *MongoTransportRepository) FindByID(ctx context.Context, id string) (*domain.Transport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTransportNotFound
	}

	var doc mongoTransport
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTransportNotFound
		}
		return nil, fmt.Errorf("find transport: %w", err)
	}
	return toTransport(doc), nil
}

func (r *MongoTransportRepository) Update(ctx context.Context, t *domain.Transport) (*domain.Transport, error) {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrTransportNotFound
	}

	doc := fromTransport(t)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update transport: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTransportNotFound
	}

	doc.ID = oid
	return toTransport(doc), nil
}

func (r *MongoTransportRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTransportNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete transport: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTransportNotFound
	}
	return nil
}

func (r *MongoTransportRepository) List(ctx context.Context, filter ports.ListTransportsFilter) ([]*domain.Transport, error) {
	query := bson.M{}
	if filter.TransportType != "" {
		query["transport_type"] = transportTypeFilter(filter.TransportType)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Skip))
	if filter.Count > 0 {
		opts.SetLimit(int64(filter.Count))
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list transports: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Transport
	for cur.Next(ctx) {
		var doc mongoTransport
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode transport: %w", err)
		}
		out = append(out, toTransport(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate transports: %w", err)
	}
	return out, nil
}

// transportTypeFilter builds a case-insensitive exact match on the type.
// The value comes straight from a query parameter, so it is quoted to keep
// regex metacharacters from widening the match.
func transportTypeFilter(transportType string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(transportType) + "$",
		Options: "i",
	}
}

func fromTransport(t *domain.Transport) mongoTransport {
	return mongoTransport{
		CanBeRented:   t.CanBeRented,
		TransportType: t.TransportType,
		Model:         t.Model,
		Color:         t.Color,
		Identifier:    t.Identifier,
		Description:   t.Description,
		Latitude:      t.Latitude,
		Longitude:     t.Longitude,
		MinutePrice:   t.MinutePrice,
		DayPrice:      t.DayPrice,
	}
}

func toTransport(doc mongoTransport) *domain.Transport {
	return &domain.Transport{
		ID:            doc.ID.Hex(),
		CanBeRented:   doc.CanBeRented,
		TransportType: doc.TransportType,
		Model:         doc.Model,
		Color:         doc.Color,
		Identifier:    doc.Identifier,
		Description:   doc.Description,
		Latitude:      doc.Latitude,
		Longitude:     doc.Longitude,
		MinutePrice:   doc.MinutePrice,
		DayPrice:      doc.DayPrice,
	}
}
