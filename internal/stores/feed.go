package stores

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/models"
)

type SortKey string

const (
	SortTime       SortKey = "horario"
	SortPopularity SortKey = "popularidade"
	SortType       SortKey = "tipo"
)

// feedTimeZone pins "today" for every caller so the feed does not flip dates
// depending on the server's locale.
var feedTimeZone = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.Local
	}
	return loc
}()

const dateLayout = "2006-01-02"

// CurrentDate returns today's ISO date in the feed's fixed timezone.
func CurrentDate() string {
	return time.Now().In(feedTimeZone).Format(dateLayout)
}

// FeedQuery carries the home feed parameters. Zero values fall back to
// today's date, time ordering and no type filter.
type FeedQuery struct {
	Date   string
	Search string
	Sort   SortKey
	Type   string
}

// FeedEvent is an approved event annotated with its vote totals.
type FeedEvent struct {
	models.Event
	TotalPositive int `json:"totalPositivo"`
	TotalNegative int `json:"totalNegativo"`
}

// DayLink points at the feed for an adjacent day, keeping the active sort
// and type filter in the query string.
type DayLink struct {
	Date    string `json:"data"`
	Display string `json:"exibicao"`
	Link    string `json:"link"`
}

type FeedPage struct {
	Events   []FeedEvent
	Date     string
	Display  string
	Previous DayLink
	Next     DayLink
}

// BuildFeed runs the single ranked feed query: approved events matching the
// selector, LEFT JOINed with votes so each row carries its aggregate totals.
// Navigation links are only populated in date mode; a search ignores dates.
func BuildFeed(db *gorm.DB, q FeedQuery) (*FeedPage, error) {
	if q.Date == "" {
		q.Date = CurrentDate()
	}
	if q.Type == "" {
		q.Type = AllTypes
	}

	query := db.Model(&models.Event{}).
		Select("events.*, "+
			"COALESCE(SUM(CASE WHEN votes.kind = ? THEN 1 ELSE 0 END), 0) AS total_positive, "+
			"COALESCE(SUM(CASE WHEN votes.kind = ? THEN 1 ELSE 0 END), 0) AS total_negative",
			models.VotePositive, models.VoteNegative).
		Joins("LEFT JOIN votes ON votes.event_id = events.id")

	query = applyFilter(query, Filter{Date: q.Date, Search: q.Search, Type: q.Type})
	query = query.Group("events.id")

	switch q.Sort {
	case SortPopularity:
		query = query.Order(
			"(SUM(CASE WHEN votes.kind = 'positivo' THEN 1 ELSE 0 END) - " +
				"SUM(CASE WHEN votes.kind = 'negativo' THEN 1 ELSE 0 END)) DESC, " +
				"events.start_time ASC")
	case SortType:
		query = query.Order("events.type ASC, events.start_time ASC")
	default:
		query = query.Order("events.start_time ASC")
	}

	events := []FeedEvent{}
	if err := query.Scan(&events).Error; err != nil {
		return nil, err
	}

	page := &FeedPage{Events: events, Date: q.Date}
	if strings.TrimSpace(q.Search) == "" {
		if day, err := time.Parse(dateLayout, q.Date); err == nil {
			page.Display = day.Format("02/01")
			page.Previous = dayLink(day.AddDate(0, 0, -1), q)
			page.Next = dayLink(day.AddDate(0, 0, 1), q)
		}
	}
	return page, nil
}

func dayLink(day time.Time, q FeedQuery) DayLink {
	sort := q.Sort
	if sort == "" {
		sort = SortTime
	}
	date := day.Format(dateLayout)
	return DayLink{
		Date:    date,
		Display: day.Format("02/01"),
		Link: fmt.Sprintf("/?data=%s&ordenar=%s&tipo=%s",
			date, sort, url.QueryEscape(q.Type)),
	}
}
