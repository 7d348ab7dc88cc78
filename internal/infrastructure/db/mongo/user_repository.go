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
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

const userCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index used to back the
// duplicate-registration check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

type userProfile struct {
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	FileID    string `bson:"file_id,omitempty"`
}

type userDoc struct {
	ID              string      `bson:"_id"`
	Email           string      `bson:"email"`
	PasswordHash    string      `bson:"password_hash"`
	RefreshToken    string      `bson:"refresh_token,omitempty"`
	Role            string      `bson:"role"`
	DepartmentID    string      `bson:"department_id,omitempty"`
	ChangedPassword bool        `bson:"changed_password"`
	Profile         userProfile `bson:"profile"`
	CreatedAt       int64       `bson:"created_at"`
	UpdatedAt       int64       `bson:"updated_at"`
}

func toUserDoc(user *domain.User) userDoc {
	return userDoc{
		ID:              user.ID,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		RefreshToken:    user.RefreshToken,
		Role:            user.Role,
		DepartmentID:    user.DepartmentID,
		ChangedPassword: user.ChangedPassword,
		Profile: userProfile{
			FirstName: user.Profile.FirstName,
			LastName:  user.Profile.LastName,
			FileID:    user.Profile.FileID,
		},
		CreatedAt: user.CreatedAt.Unix(),
		UpdatedAt: user.UpdatedAt.Unix(),
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:              d.ID,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		RefreshToken:    d.RefreshToken,
		Role:            d.Role,
		DepartmentID:    d.DepartmentID,
		ChangedPassword: d.ChangedPassword,
		Profile: domain.Profile{
			FirstName: d.Profile.FirstName,
			LastName:  d.Profile.LastName,
			FileID:    d.Profile.FileID,
		},
		CreatedAt: unixToTime(d.CreatedAt),
		UpdatedAt: unixToTime(d.UpdatedAt),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := toUserDoc(user)
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindWithToken(ctx context.Context, email, refreshToken string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "refresh_token": refreshToken})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) ChangePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash":    passwordHash,
		"changed_password": true,
		"updated_at":       time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateToken(ctx context.Context, id, refreshToken string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"refresh_token": refreshToken,
		"updated_at":    time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return decodeUsers(ctx, cur)
}

// SearchByName matches first or last name case-insensitively on a substring.
func (r *UserRepository) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"profile.first_name": bson.M{"$regex": name, "$options": "i"}},
		bson.M{"profile.last_name": bson.M{"$regex": name, "$options": "i"}},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return decodeUsers(ctx, cur)
}

func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Email != "" {
		set["email"] = update.Email
	}
	if update.DepartmentID != "" {
		set["department_id"] = update.DepartmentID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"role":       role,
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// CountByDepartment groups users by department id. Users without a department
// are keyed under the empty string.
func (r *UserRepository) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$department_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group users by department: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode department count: %w", err)
		}
		counts[row.ID] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("group users by department: %w", err)
	}
	return counts, nil
}

func decodeUsers(ctx context.Context, cur *mongo.Cursor) ([]*domain.User, error) {
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
