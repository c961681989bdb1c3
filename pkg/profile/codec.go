package profile

import "github.com/incollege/backend/pkg/flatfile"

// RecordWidth is the total encoded width of one profile record.
const RecordWidth = 1284

const (
	slots = 3 // fixed repetition count for experience and education groups
)

var schema = newSchema()

func newSchema() flatfile.Schema {
	fields := []flatfile.Field{
		{Name: "username", Width: 20},
		{Name: "firstName", Width: 20},
		{Name: "lastName", Width: 20},
		{Name: "school", Width: 50},
		{Name: "major", Width: 40},
		{Name: "gradYear", Width: 4},
		{Name: "about", Width: 200},
	}
	for i := 0; i < slots; i++ {
		fields = append(fields,
			flatfile.Field{Name: "expTitle", Width: 30},
			flatfile.Field{Name: "expCompany", Width: 40},
			flatfile.Field{Name: "expDates", Width: 30},
			flatfile.Field{Name: "expDesc", Width: 120},
		)
	}
	for i := 0; i < slots; i++ {
		fields = append(fields,
			flatfile.Field{Name: "eduDegree", Width: 30},
			flatfile.Field{Name: "eduSchool", Width: 40},
			flatfile.Field{Name: "eduYears", Width: 20},
		)
	}
	return flatfile.NewSchema("profile", fields...)
}

// Codec implements flatfile.Codec for Profile records.
type Codec struct{}

func (Codec) Encode(p Profile) (string, error) {
	values := []string{
		p.Username, p.FirstName, p.LastName, p.School, p.Major, p.GradYear, p.About,
	}
	for i := 0; i < slots; i++ {
		var e Experience
		if i < len(p.Experiences) {
			e = p.Experiences[i]
		}
		values = append(values, e.Title, e.Company, e.Dates, e.Description)
	}
	for i := 0; i < slots; i++ {
		var ed Education
		if i < len(p.Education) {
			ed = p.Education[i]
		}
		values = append(values, ed.Degree, ed.School, ed.Years)
	}
	return schema.Encode(values...)
}

func (Codec) Decode(line string) Profile {
	d := schema.NewDecoder(line)
	p := Profile{
		Username:  d.Next(),
		FirstName: d.Next(),
		LastName:  d.Next(),
		School:    d.Next(),
		Major:     d.Next(),
		GradYear:  d.Next(),
		About:     d.Next(),
	}
	for i := 0; i < slots; i++ {
		p.Experiences = append(p.Experiences, Experience{
			Title:       d.Next(),
			Company:     d.Next(),
			Dates:       d.Next(),
			Description: d.Next(),
		})
	}
	for i := 0; i < slots; i++ {
		p.Education = append(p.Education, Education{
			Degree: d.Next(),
			School: d.Next(),
			Years:  d.Next(),
		})
	}
	return p
}
