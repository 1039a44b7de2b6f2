package scoring

// Scale selects the threshold table for grade mapping.
type Scale string

const (
	// ScaleTen grades signal-derived risk scores in [0,10].
	ScaleTen Scale = "0-10"
	// ScaleHundred grades compliance percentages in [0,100].
	ScaleHundred Scale = "0-100"
)

// Grade is a letter grade with its UI color class.
type Grade struct {
	Letter string `json:"letter"`
	Color  string `json:"color"`
}

var gradeColors = map[string]string{
	"A": "green",
	"B": "teal",
	"C": "yellow",
	"D": "orange",
	"F": "red",
}

// ToGrade maps a numeric score to a letter grade. Thresholds are inclusive
// at the lower bound of each band; there is no interpolation. The 0-100
// scale (used for compliance) has no F band.
func ToGrade(score float64, scale Scale) Grade {
	var letter string
	if scale == ScaleHundred {
		switch {
		case score >= 90:
			letter = "A"
		case score >= 75:
			letter = "B"
		case score >= 50:
			letter = "C"
		default:
			letter = "D"
		}
	} else {
		switch {
		case score >= 8:
			letter = "A"
		case score >= 6:
			letter = "B"
		case score >= 4:
			letter = "C"
		case score >= 2:
			letter = "D"
		default:
			letter = "F"
		}
	}
	return Grade{Letter: letter, Color: gradeColors[letter]}
}

// Stars renders a letter grade as a 1-5 star count. Unknown letters
// (including the empty string used for N/A categories) render 0 stars.
func Stars(letter string) int {
	switch letter {
	case "A":
		return 5
	case "B":
		return 4
	case "C":
		return 3
	case "D":
		return 2
	case "F":
		return 1
	default:
		return 0
	}
}

// HealthStatus maps a 0-100 compliance percentage to its qualitative label,
// using the same bands as the 0-100 grade table.
func HealthStatus(percentage int) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 75:
		return "Good"
	case percentage >= 50:
		return "Fair"
	default:
		return "Poor"
	}
}
