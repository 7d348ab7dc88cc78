package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

const departmentCollection = "departments"

type DepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{coll: db.Collection(departmentCollection)}
}

type departmentDoc struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (d departmentDoc) toDomain() *domain.Department {
	return &domain.Department{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	var departments []*domain.Department
	for cur.Next(ctx) {
		var doc departmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		departments = append(departments, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	var doc departmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DepartmentRepository) Create(ctx context.Context, department *domain.Department) (*domain.Department, error) {
	doc := departmentDoc{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: department.CreatedAt.Unix(),
		UpdatedAt: department.UpdatedAt.Unix(),
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DepartmentRepository) Rename(ctx context.Context, id, name string) (*domain.Department, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"name":       name,
		"updated_at": time.Now().UTC().Unix(),
	}}

	var doc departmentDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("rename department: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count departments: %w", err)
	}
	return n, nil
}
