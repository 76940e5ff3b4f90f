package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

const slidesCollection = "slides"

// SlideRepository implements ports.SlideRepository on MongoDB.
type SlideRepository struct {
	coll *mongo.Collection
}

func NewSlideRepository(db *mongo.Database) *SlideRepository {
	return &SlideRepository{coll: db.Collection(slidesCollection)}
}

type slideDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Text    string             `bson:"text"`
	Subtext string             `bson:"subtext"`
	Image   string             `bson:"image,omitempty"`
}

func (d slideDoc) toDomain() domain.Slide {
	return domain.Slide{ID: d.ID.Hex(), Text: d.Text, Subtext: d.Subtext, Image: d.Image}
}

func (r *SlideRepository) Insert(ctx context.Context, slide *domain.Slide) (*domain.Slide, error) {
	doc := slideDoc{Text: slide.Text, Subtext: slide.Subtext, Image: slide.Image}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert slide: %w", err)
	}

	created := *slide
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SlideRepository) List(ctx context.Context) ([]domain.Slide, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer cur.Close(ctx)

	var slides []domain.Slide
	for cur.Next(ctx) {
		var doc slideDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode slide: %w", err)
		}
		slides = append(slides, doc.toDomain())
	}
	return slides, cur.Err()
}

func (r *SlideRepository) Update(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSlideNotFound
	}

	update := bson.M{"$set": bson.M{"text": slide.Text, "subtext": slide.Subtext, "image": slide.Image}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc slideDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSlideNotFound
		}
		return nil, fmt.Errorf("update slide: %w", err)
	}

	updated := doc.toDomain()
	return &updated, nil
}

func (r *SlideRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSlideNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSlideNotFound
	}
	return nil
}
