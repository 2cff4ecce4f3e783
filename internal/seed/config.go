package seed

type Config struct {
	Days         int           `yaml:"days"`
	Interviewers []Interviewer `yaml:"interviewers"`
}

type Interviewer struct {
	Name      string     `yaml:"name"`
	Email     string     `yaml:"email"`
	Expertise []string   `yaml:"expertise"`
	Slots     []Template `yaml:"slots"`
}

// Template is a slot repeated on every seeded day.
type Template struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

const defaultDays = 3

var fixture = []Interviewer{
	{
		Name:      "Aarav Sharma",
		Email:     "aarav.sharma@interviewdost.dev",
		Expertise: []string{"Go", "System Design", "Distributed Systems"},
		Slots: []Template{
			{Start: "10:00", End: "11:00"},
			{Start: "14:00", End: "15:00"},
			{Start: "18:00", End: "19:00"},
		},
	},
	{
		Name:      "Priya Nair",
		Email:     "priya.nair@interviewdost.dev",
		Expertise: []string{"Frontend", "React", "TypeScript"},
		Slots: []Template{
			{Start: "09:00", End: "10:00"},
			{Start: "12:00", End: "13:00"},
			{Start: "17:00", End: "18:00"},
		},
	},
	{
		Name:      "Rohan Mehta",
		Email:     "rohan.mehta@interviewdost.dev",
		Expertise: []string{"Data Structures", "Algorithms", "Java"},
		Slots: []Template{
			{Start: "11:00", End: "12:00"},
			{Start: "15:00", End: "16:00"},
			{Start: "20:00", End: "21:00"},
		},
	},
	{
		Name:      "Sneha Kulkarni",
		Email:     "sneha.kulkarni@interviewdost.dev",
		Expertise: []string{"Behavioral", "Product Management"},
		Slots: []Template{
			{Start: "10:30", End: "11:30"},
			{Start: "16:00", End: "17:00"},
		},
	},
}
