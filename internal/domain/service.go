package domain

// ServiceCategory groups the clinic's treatment offerings
type ServiceCategory string

const (
	CategoryConsultation ServiceCategory = "consultation"
	CategoryCooling      ServiceCategory = "cooling"
)

// Service is one bookable treatment from the fixed catalog
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Description     string
	Price           float64
	Category        ServiceCategory
}

// Services фиксированный каталог услуг клиники.
// Каталог компилируется в бинарник: услуги меняются релизом, не данными.
var Services = []Service{
	{
		ID:              "consultation-30",
		Name:            "Beratung Kälteanwendung",
		DurationMinutes: 30,
		Description:     "Umfassende Beratung zu Kälteanwendungen und Behandlungsmöglichkeiten",
		Price:           60,
		Category:        CategoryConsultation,
	},
	{
		ID:              "consultation-45",
		Name:            "Ausführliche Beratung",
		DurationMinutes: 45,
		Description:     "Detaillierte Beratung mit Behandlungsplan",
		Price:           80,
		Category:        CategoryConsultation,
	},
	{
		ID:              "cooling-30",
		Name:            "Kälteanwendung 30 Min",
		DurationMinutes: 30,
		Description:     "Gezielte Kältetherapie für 30 Minuten",
		Price:           90,
		Category:        CategoryCooling,
	},
	{
		ID:              "cooling-45",
		Name:            "Kälteanwendung 45 Min",
		DurationMinutes: 45,
		Description:     "Intensive Kältetherapie für 45 Minuten",
		Price:           120,
		Category:        CategoryCooling,
	},
	{
		ID:              "cooling-60",
		Name:            "Kälteanwendung 60 Min",
		DurationMinutes: 60,
		Description:     "Umfassende Kältetherapie für 60 Minuten",
		Price:           150,
		Category:        CategoryCooling,
	},
	{
		ID:              "cooling-90",
		Name:            "Kälteanwendung 90 Min",
		DurationMinutes: 90,
		Description:     "Intensive Langzeit-Kältetherapie für 90 Minuten",
		Price:           200,
		Category:        CategoryCooling,
	},
}

// ServiceByID looks up a catalog service by its identifier
func ServiceByID(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ServicesByCategory returns the catalog entries of one category,
// preserving catalog order
func ServicesByCategory(category ServiceCategory) []Service {
	result := make([]Service, 0, len(Services))
	for _, s := range Services {
		if s.Category == category {
			result = append(result, s)
		}
	}
	return result
}
