package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

const menusCollection = "menus"

// MenuRepository implements ports.MenuRepository on MongoDB.
type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menusCollection)}
}

type menuDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	Description string             `bson:"description,omitempty"`
}

func (d menuDoc) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
	}
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	doc := menuDoc{
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Image:       item.Image,
		Description: item.Description,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.MenuItem
	for cur.Next(ctx) {
		var doc menuDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, cur.Err()
}
