package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registrations counts registration attempts by result.
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photoshare_registrations_total",
		Help: "Total number of registration attempts by result",
	}, []string{"result"})

	// Logins counts login attempts by result.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photoshare_logins_total",
		Help: "Total number of login attempts by result",
	}, []string{"result"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photoshare_posts_created_total",
		Help: "Total number of posts created",
	})

	// Likes counts recorded likes.
	Likes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photoshare_likes_total",
		Help: "Total number of likes recorded",
	})

	// Follows counts recorded follow edges.
	Follows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photoshare_follows_total",
		Help: "Total number of follow edges recorded",
	})

	// OrphanedBlobs counts uploaded files that could not be removed after a failed insert.
	OrphanedBlobs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photoshare_orphaned_blobs_total",
		Help: "Total number of uploaded files left behind after a failed cleanup",
	})
)

// Result labels shared by the counters above.
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultError    = "error"
)
