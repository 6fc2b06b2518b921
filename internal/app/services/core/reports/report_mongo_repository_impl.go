package reports

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Database) ReportRepository {
	return &reportMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionReports),
	}
}

func (repo *reportMongoRepository) CreateReport(ctx context.Context, report *models.Report) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertData(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertData(nil)
	}

	return objectID.Hex(), nil
}

func (repo *reportMongoRepository) FindByID(ctx context.Context, reportID, clinicID string) (*models.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, nil
	}

	filter := bson.M{
		"_id":      objectID,
		"clinicId": clinicID,
	}

	var report models.Report
	err = repo.Collection.FindOne(ctx, filter).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindData(err)
	}

	return &report, nil
}

func (repo *reportMongoRepository) FindAllByPatient(ctx context.Context, clinicID, patientID string) ([]models.Report, error) {
	filter := bson.M{
		"clinicId":  clinicID,
		"patientId": patientID,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "examDate", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindData(err)
	}
	defer cursor.Close(ctx)

	reports := make([]models.Report, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, exceptions.ErrMongoDBFindData(err)
	}

	return reports, nil
}
