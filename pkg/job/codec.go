package job

import "github.com/incollege/backend/pkg/flatfile"

const (
	// JobRecordWidth is the encoded width of one job record.
	JobRecordWidth = 690
	// ApplicationRecordWidth is the encoded width of one application record.
	ApplicationRecordWidth = 170
)

var jobSchema = flatfile.NewSchema("job",
	flatfile.Field{Name: "title", Width: 50},
	flatfile.Field{Name: "description", Width: 500},
	flatfile.Field{Name: "employer", Width: 50},
	flatfile.Field{Name: "location", Width: 50},
	flatfile.Field{Name: "salary", Width: 20},
	flatfile.Field{Name: "poster", Width: 20},
)

var applicationSchema = flatfile.NewSchema("application",
	flatfile.Field{Name: "username", Width: 20},
	flatfile.Field{Name: "title", Width: 50},
	flatfile.Field{Name: "employer", Width: 50},
	flatfile.Field{Name: "location", Width: 50},
)

// Codec implements flatfile.Codec for Job records.
type Codec struct{}

func (Codec) Encode(j Job) (string, error) {
	return jobSchema.Encode(j.Title, j.Description, j.Employer, j.Location, j.Salary, j.Poster)
}

func (Codec) Decode(line string) Job {
	d := jobSchema.NewDecoder(line)
	return Job{
		Title:       d.Next(),
		Description: d.Next(),
		Employer:    d.Next(),
		Location:    d.Next(),
		Salary:      d.Next(),
		Poster:      d.Next(),
	}
}

// ApplicationCodec implements flatfile.Codec for Application records.
type ApplicationCodec struct{}

func (ApplicationCodec) Encode(a Application) (string, error) {
	return applicationSchema.Encode(a.Username, a.Title, a.Employer, a.Location)
}

func (ApplicationCodec) Decode(line string) Application {
	d := applicationSchema.NewDecoder(line)
	return Application{
		Username: d.Next(),
		Title:    d.Next(),
		Employer: d.Next(),
		Location: d.Next(),
	}
}
