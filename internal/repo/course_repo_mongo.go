package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/pkg/utils"
)

type courseDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	VideoID     string             `bson:"videoId"`
	Image       string             `bson:"image"`
	Level       string             `bson:"level"`
	Energy      string             `bson:"energy"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d courseDoc) toDomain() domain.Course {
	return domain.Course{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		VideoID:     d.VideoID,
		Image:       d.Image,
		Level:       d.Level,
		Energy:      d.Energy,
		CreatedAt:   d.CreatedAt,
	}
}

func toCourseDoc(oid primitive.ObjectID, c *domain.Course) courseDoc {
	return courseDoc{
		ID:          oid,
		Name:        c.Name,
		Description: c.Description,
		VideoID:     c.VideoID,
		Image:       c.Image,
		Level:       c.Level,
		Energy:      c.Energy,
		CreatedAt:   c.CreatedAt,
	}
}

// courseSet 覆盖全部可变字段，空串同样写入；createdAt 不动
func courseSet(c *domain.Course) bson.M {
	return bson.M{
		"name":        c.Name,
		"description": c.Description,
		"videoId":     c.VideoID,
		"image":       c.Image,
		"level":       c.Level,
		"energy":      c.Energy,
	}
}

type MongoCourseRepo struct{ coll *mongo.Collection }

func NewMongoCourseRepo(db *mongo.Database) *MongoCourseRepo {
	return &MongoCourseRepo{coll: db.Collection(collCourses)}
}

func (r *MongoCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []courseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Course, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoCourseRepo) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := utils.ParseID(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoCourseRepo) FindByName(ctx context.Context, name string) (*domain.Course, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCourseRepo) findOne(ctx context.Context, filter bson.M) (*domain.Course, error) {
	var d courseDoc
	err := r.coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c := d.toDomain()
	return &c, nil
}

func (r *MongoCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	oid := primitive.NewObjectID()
	if c.ID != "" {
		parsed, err := utils.ParseID(c.ID)
		if err != nil {
			return domain.ErrMalformedID
		}
		oid = parsed
	}
	if _, err := r.coll.InsertOne(ctx, toCourseDoc(oid, c)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	c.ID = oid.Hex()
	return nil
}

func (r *MongoCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	oid, err := utils.ParseID(c.ID)
	if err != nil {
		return domain.ErrMalformedID
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": courseSet(c)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoCourseRepo) Delete(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := utils.ParseID(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}
	var d courseDoc
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c := d.toDomain()
	return &c, nil
}
