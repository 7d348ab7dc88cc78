package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

const fileCollection = "files"

type FileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{coll: db.Collection(fileCollection)}
}

type fileDoc struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Path        string `bson:"path"`
	ContentType string `bson:"content_type"`
	Size        int64  `bson:"size"`
	CreatedAt   int64  `bson:"created_at"`
}

func (d fileDoc) toDomain() *domain.StoredFile {
	return &domain.StoredFile{
		ID:          d.ID,
		Name:        d.Name,
		Path:        d.Path,
		ContentType: d.ContentType,
		Size:        d.Size,
		CreatedAt:   unixToTime(d.CreatedAt),
	}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.StoredFile) (*domain.StoredFile, error) {
	doc := fileDoc{
		ID:          file.ID,
		Name:        file.Name,
		Path:        file.Path,
		ContentType: file.ContentType,
		Size:        file.Size,
		CreatedAt:   file.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*domain.StoredFile, error) {
	var doc fileDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}
