package reports

import (
	"cardioflow-service/internal/app/models"
	"fmt"
	"strings"
)

// GenerateConclusion renders the narrative conclusion text for an exam from
// its structured vessel findings. One sentence per finding, plus a summary
// line when any stent was placed.
func GenerateConclusion(examType string, findings []models.VesselFinding) string {
	if len(findings) == 0 {
		return "No angiographically significant lesions identified."
	}

	sentences := make([]string, 0, len(findings)+1)
	stented := make([]string, 0)

	for _, finding := range findings {
		sentences = append(sentences, describeFinding(finding))
		if finding.StentPlaced {
			stented = append(stented, finding.Vessel)
		}
	}

	if len(stented) > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"Angioplasty performed with stent placement in: %s.",
			strings.Join(stented, ", "),
		))
	} else if examType == "angioplasty" {
		sentences = append(sentences, "No stent was placed during the procedure.")
	}

	return strings.Join(sentences, " ")
}

func describeFinding(finding models.VesselFinding) string {
	var sb strings.Builder

	switch {
	case finding.StenosisPercent == 0:
		fmt.Fprintf(&sb, "%s without significant lesions.", finding.Vessel)
		return sb.String()
	case finding.StenosisPercent < 50:
		fmt.Fprintf(&sb, "%s with mild stenosis of %d%%", finding.Vessel, finding.StenosisPercent)
	case finding.StenosisPercent < 70:
		fmt.Fprintf(&sb, "%s with moderate stenosis of %d%%", finding.Vessel, finding.StenosisPercent)
	case finding.StenosisPercent < 100:
		fmt.Fprintf(&sb, "%s with severe stenosis of %d%%", finding.Vessel, finding.StenosisPercent)
	default:
		fmt.Fprintf(&sb, "%s with total occlusion", finding.Vessel)
	}

	if finding.LesionType != "" {
		fmt.Fprintf(&sb, " (%s lesion)", finding.LesionType)
	}

	if finding.StentPlaced {
		if finding.StentType != "" {
			fmt.Fprintf(&sb, ", treated with %s stent", finding.StentType)
		} else {
			fmt.Fprintf(&sb, ", treated with stent")
		}
	}

	sb.WriteString(".")
	return sb.String()
}
