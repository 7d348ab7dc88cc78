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

const projectCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectCollection)}
}

type projectDoc struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Description string   `bson:"description,omitempty"`
	MemberIDs   []string `bson:"member_ids"`
	CreatedAt   int64    `bson:"created_at"`
	UpdatedAt   int64    `bson:"updated_at"`
}

func (d projectDoc) toDomain() *domain.Project {
	members := d.MemberIDs
	if members == nil {
		members = []string{}
	}
	return &domain.Project{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		MemberIDs:   members,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var doc projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	doc := projectDoc{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		MemberIDs:   project.MemberIDs,
		CreatedAt:   project.CreatedAt.Unix(),
		UpdatedAt:   project.UpdatedAt.Unix(),
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.MemberIDs == nil {
		doc.MemberIDs = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return doc.toDomain(), nil
}

// AssignMembers adds the given users to the project membership, ignoring ids
// that are already assigned.
func (r *ProjectRepository) AssignMembers(ctx context.Context, id string, userIDs []string) (*domain.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$addToSet": bson.M{"member_ids": bson.M{"$each": userIDs}},
		"$set":      bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	var doc projectDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("assign project members: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// CountMembers returns the size of a project's membership list.
func (r *ProjectRepository) CountMembers(ctx context.Context, id string) (int64, error) {
	project, err := r.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return int64(len(project.MemberIDs)), nil
}
