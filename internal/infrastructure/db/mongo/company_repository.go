package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

const companyCollection = "companies"

// nameCollation makes exact company-name matches case-insensitive, pairing
// with the unique index created in EnsureIndexes.
var nameCollation = &options.Collation{Locale: "en", Strength: 2}

type MongoCompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *MongoCompanyRepository {
	return &MongoCompanyRepository{coll: db.Collection(companyCollection)}
}

type addressDoc struct {
	Area string `bson:"area,omitempty"`
	Road string `bson:"road,omitempty"`
}

type phoneDoc struct {
	Type   string `bson:"type,omitempty"`
	Number string `bson:"number,omitempty"`
}

type companyDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CompanyName  string             `bson:"company_name"`
	PasswordHash string             `bson:"password"`
	Email        string             `bson:"email"`
	Address      addressDoc         `bson:"address,omitempty"`
	Phone        []phoneDoc         `bson:"phone,omitempty"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *companyDoc) toDomain() *domain.Company {
	phones := make([]domain.Phone, 0, len(d.Phone))
	for _, p := range d.Phone {
		phones = append(phones, domain.Phone{Type: p.Type, Number: p.Number})
	}
	if len(phones) == 0 {
		phones = nil
	}
	return &domain.Company{
		ID:           d.ID.Hex(),
		CompanyName:  d.CompanyName,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		Address:      domain.Address{Area: d.Address.Area, Road: d.Address.Road},
		Phone:        phones,
		Role:         d.Role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func phonesToDoc(phones []domain.Phone) []phoneDoc {
	if len(phones) == 0 {
		return nil
	}
	docs := make([]phoneDoc, 0, len(phones))
	for _, p := range phones {
		docs = append(docs, phoneDoc{Type: p.Type, Number: p.Number})
	}
	return docs
}

func (r *MongoCompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	doc := companyDoc{
		CompanyName:  company.CompanyName,
		PasswordHash: company.PasswordHash,
		Email:        company.Email,
		Address:      addressDoc{Area: company.Address.Area, Road: company.Address.Road},
		Phone:        phonesToDoc(company.Phone),
		Role:         company.Role,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *company
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoCompanyRepository) FindByName(ctx context.Context, companyName string) (*domain.Company, error) {
	opts := options.FindOne().SetCollation(nameCollation)
	var doc companyDoc
	if err := r.coll.FindOne(ctx, bson.M{"company_name": companyName}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoCompanyRepository) Find(ctx context.Context, filter ports.CompanyFilter) ([]domain.Company, int64, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["company_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}

	count, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	opts := options.Find().
		SetSkip((filter.Page - 1) * filter.Limit).
		SetLimit(filter.Limit).
		SetSort(bson.D{{Key: "company_name", Value: 1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []domain.Company
	for cursor.Next(ctx) {
		var doc companyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate companies: %w", err)
	}

	return companies, count, nil
}

func (r *MongoCompanyRepository) Update(ctx context.Context, companyName string, update ports.CompanyUpdate) (*domain.Company, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Address != nil {
		set["address"] = addressDoc{Area: update.Address.Area, Road: update.Address.Road}
	}
	if update.Phone != nil {
		set["phone"] = phonesToDoc(*update.Phone)
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetCollation(nameCollation)
	var doc companyDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"company_name": companyName}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoCompanyRepository) Delete(ctx context.Context, companyName string) (*domain.Company, error) {
	opts := options.FindOneAndDelete().SetCollation(nameCollation)
	var doc companyDoc
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"company_name": companyName}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("delete company: %w", err)
	}
	return doc.toDomain(), nil
}
