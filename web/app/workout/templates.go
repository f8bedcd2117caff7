package workout

// Categories selectable in the builder, in display order.
var Categories = []string{"Cardio", "Força", "Flexibilidade", "HIIT", "Funcional"}

// suggestionsByCategory is the advisory template table. Picking a
// suggestion only pre-fills the name field; manual entry is never
// constrained by it.
var suggestionsByCategory = map[string][]string{
	"Cardio": {
		"Polichinelo",
		"Corrida Estacionária",
		"Mountain Climbers",
		"Burpee",
		"Jumping Jacks",
		"High Knees",
		"Skipping",
		"Shadow Boxing",
	},
	"Força": {
		"Flexão de Braço",
		"Agachamento",
		"Lunges",
		"Prancha",
		"Flexão Diamante",
		"Agachamento Búlgaro",
		"Pike Push-ups",
		"Glute Bridge",
	},
	"Flexibilidade": {
		"Alongamento de Panturrilha",
		"Alongamento de Quadríceps",
		"Alongamento de Ombros",
		"Gato e Vaca",
		"Torção Espinhal",
		"Cão Olhando para Baixo",
		"Alongamento do Psoas",
		"Postura da Criança",
	},
	"HIIT": {
		"Burpee com Salto",
		"Squat Jump",
		"Mountain Climbers Rápidos",
		"Prancha com Knee-to-Elbow",
		"Jump Lunges",
		"Bear Crawl",
		"Tabata Squats",
		"Sprint no Lugar",
	},
	"Funcional": {
		"Bear Crawl",
		"Crab Walk",
		"Turkish Get-up",
		"Farmer Walk",
		"Single Leg Deadlift",
		"Lateral Lunges",
		"Wood Choppers",
		"Crawling Patterns",
	},
}

// SuggestedExercises returns the templates for a category, or a sample
// across categories when none is chosen.
func SuggestedExercises(category string) []string {
	if list, ok := suggestionsByCategory[category]; ok {
		return list
	}

	var mixed []string
	for _, cat := range []string{"Cardio", "Força", "HIIT", "Funcional"} {
		mixed = append(mixed, suggestionsByCategory[cat][:2]...)
	}
	return mixed
}
