package store

import (
	"time"

	"github.com/MKhiriev/go-green-pledge/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "username", "email", "password", "created_at"}

	projectColumns = []string{
		"id", "name", "description", "location", "latitude", "longitude", "project_type",
		"area", "trees_planted", "co2_offset", "image_url", "start_date", "status", "geometry", "created_at",
	}

	pledgeColumns = []string{"id", "user_id", "project_id", "amount", "trees_count", "message", "created_at"}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// storeNow is the timestamp assigned to new records. Microsecond precision
// matches what PostgreSQL keeps, so a created entity equals its re-read copy.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt)
	user.CreatedAt = user.CreatedAt.UTC()
	return user, err
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Location,
		&p.Latitude,
		&p.Longitude,
		&p.ProjectType,
		&p.Area,
		&p.TreesPlanted,
		&p.CO2Offset,
		&p.ImageURL,
		&p.StartDate,
		&p.Status,
		&p.Geometry,
		&p.CreatedAt,
	)
	p.CreatedAt = p.CreatedAt.UTC()
	if p.StartDate != nil {
		start := p.StartDate.UTC()
		p.StartDate = &start
	}
	return p, err
}

func scanPledge(row rowScanner) (models.Pledge, error) {
	var p models.Pledge
	err := row.Scan(&p.ID, &p.UserID, &p.ProjectID, &p.Amount, &p.TreesCount, &p.Message, &p.CreatedAt)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, err
}

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.builder().Select(userColumns...).From(models.User{}.TableName())
}

func (db *DB) selectProjects() sq.SelectBuilder {
	return db.builder().Select(projectColumns...).From(models.Project{}.TableName()).OrderBy("created_at", "id")
}

func (db *DB) selectPledges() sq.SelectBuilder {
	return db.builder().Select(pledgeColumns...).From(models.Pledge{}.TableName()).OrderBy("created_at", "id")
}

func (db *DB) insertUser(user models.User) sq.InsertBuilder {
	return db.builder().Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Password, user.CreatedAt)
}

func (db *DB) insertProject(p models.Project) sq.InsertBuilder {
	return db.builder().Insert(p.TableName()).
		Columns(projectColumns...).
		Values(
			p.ID,
			p.Name,
			p.Description,
			p.Location,
			p.Latitude,
			p.Longitude,
			string(p.ProjectType),
			p.Area,
			p.TreesPlanted,
			p.CO2Offset,
			p.ImageURL,
			p.StartDate,
			string(p.Status),
			p.Geometry,
			p.CreatedAt,
		)
}

func (db *DB) insertPledge(p models.Pledge) sq.InsertBuilder {
	return db.builder().Insert(p.TableName()).
		Columns(pledgeColumns...).
		Values(p.ID, p.UserID, p.ProjectID, p.Amount, p.TreesCount, p.Message, p.CreatedAt)
}

// updateProject builds an UPDATE that only touches the columns present in patch.
// The patch must not be empty.
func (db *DB) updateProject(id string, patch models.ProjectPatch) sq.UpdateBuilder {
	set := make(map[string]any, 13)

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Latitude != nil {
		set["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		set["longitude"] = *patch.Longitude
	}
	if patch.ProjectType != nil {
		set["project_type"] = string(*patch.ProjectType)
	}
	if patch.Area != nil {
		set["area"] = *patch.Area
	}
	if patch.TreesPlanted != nil {
		set["trees_planted"] = *patch.TreesPlanted
	}
	if patch.CO2Offset != nil {
		set["co2_offset"] = *patch.CO2Offset
	}
	if patch.ImageURL != nil {
		if *patch.ImageURL == "" {
			set["image_url"] = nil
		} else {
			set["image_url"] = *patch.ImageURL
		}
	}
	if patch.StartDate != nil {
		set["start_date"] = patch.StartDate.UTC()
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if !patch.Geometry.IsZero() {
		set["geometry"] = patch.Geometry
	}

	return db.builder().Update(models.Project{}.TableName()).SetMap(set).Where(sq.Eq{"id": id})
}
