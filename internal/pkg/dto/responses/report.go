package responses

type VesselFinding struct {
	Vessel          string `json:"vessel"`
	StenosisPercent int    `json:"stenosis_percent"`
	LesionType      string `json:"lesion_type,omitempty"`
	StentPlaced     bool   `json:"stent_placed"`
	StentType       string `json:"stent_type,omitempty"`
}

type Report struct {
	ID          string          `json:"id"`
	ClinicID    string          `json:"clinic_id"`
	PatientID   string          `json:"patient_id"`
	ExamType    string          `json:"exam_type"`
	ExamDate    string          `json:"exam_date"`
	Indication  string          `json:"indication,omitempty"`
	AccessRoute string          `json:"access_route,omitempty"`
	Findings    []VesselFinding `json:"findings"`
	Conclusion  string          `json:"conclusion"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
}
