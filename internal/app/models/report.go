package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VesselFinding struct {
	Vessel          string `bson:"vessel"`
	StenosisPercent int    `bson:"stenosisPercent"`
	LesionType      string `bson:"lesionType,omitempty"`
	StentPlaced     bool   `bson:"stentPlaced"`
	StentType       string `bson:"stentType,omitempty"`
}

// Report is a catheterization or angioplasty exam document. The nested
// findings list keeps it in Mongo rather than the relational store.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ClinicID    string             `bson:"clinicId"`
	PatientID   string             `bson:"patientId"`
	ExamType    string             `bson:"examType"`
	ExamDate    time.Time          `bson:"examDate"`
	Indication  string             `bson:"indication,omitempty"`
	AccessRoute string             `bson:"accessRoute,omitempty"`
	Findings    []VesselFinding    `bson:"findings"`
	Conclusion  string             `bson:"conclusion"`
	CreatedBy   string             `bson:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
}
