package requests

type VesselFinding struct {
	Vessel          string `json:"vessel" validate:"required,max=100"`
	StenosisPercent int    `json:"stenosis_percent" validate:"gte=0,lte=100"`
	LesionType      string `json:"lesion_type,omitempty" validate:"omitempty,max=100"`
	StentPlaced     bool   `json:"stent_placed,omitempty"`
	StentType       string `json:"stent_type,omitempty" validate:"omitempty,max=100"`
}

type CreateReport struct {
	PatientID   string          `json:"patient_id" validate:"required,uuid"`
	ExamType    string          `json:"exam_type" validate:"required,oneof=catheterization angioplasty"`
	ExamDate    string          `json:"exam_date" validate:"required,datetime=2006-01-02"`
	Indication  string          `json:"indication,omitempty" validate:"omitempty,max=2000"`
	AccessRoute string          `json:"access_route,omitempty" validate:"omitempty,oneof=radial femoral"`
	Findings    []VesselFinding `json:"findings" validate:"required,min=1,dive"`
}
