package conversions

import (
	"net/url"

	"code.superseriousbusiness.org/activity/streams"
	"code.superseriousbusiness.org/activity/streams/vocab"
	"github.com/sidereusnuntius/microblog/internal/domain"
)

// PublicAudience is the special collection that addresses an activity to the world.
var PublicAudience, _ = url.Parse("https://www.w3.org/ns/activitystreams#Public")

// PostToNote maps a post to a public Note attributed to its author.
func PostToNote(p domain.PostFed) vocab.ActivityStreamsNote {
	n := streams.NewActivityStreamsNote()

	id := streams.NewJSONLDIdProperty()
	id.SetIRI(p.ApID)
	n.SetJSONLDId(id)

	attributedTo := streams.NewActivityStreamsAttributedToProperty()
	attributedTo.AppendIRI(p.Author.URL)
	n.SetActivityStreamsAttributedTo(attributedTo)

	content := streams.NewActivityStreamsContentProperty()
	content.AppendXMLSchemaString(p.Content)
	n.SetActivityStreamsContent(content)

	if p.Url != nil {
		u := streams.NewActivityStreamsUrlProperty()
		u.AppendIRI(p.Url)
		n.SetActivityStreamsUrl(u)
	}

	if !p.Created.IsZero() {
		published := streams.NewActivityStreamsPublishedProperty()
		published.Set(p.Created)
		n.SetActivityStreamsPublished(published)
	}

	to := streams.NewActivityStreamsToProperty()
	to.AppendIRI(PublicAudience)
	n.SetActivityStreamsTo(to)

	return n
}

// NewCreate wraps a Note in a Create activity addressed to the public collection.
func NewCreate(id, actor *url.URL, note vocab.ActivityStreamsNote) vocab.ActivityStreamsCreate {
	c := streams.NewActivityStreamsCreate()

	idProp := streams.NewJSONLDIdProperty()
	idProp.SetIRI(id)
	c.SetJSONLDId(idProp)

	actorProp := streams.NewActivityStreamsActorProperty()
	actorProp.AppendIRI(actor)
	c.SetActivityStreamsActor(actorProp)

	obj := streams.NewActivityStreamsObjectProperty()
	obj.AppendActivityStreamsNote(note)
	c.SetActivityStreamsObject(obj)

	to := streams.NewActivityStreamsToProperty()
	to.AppendIRI(PublicAudience)
	c.SetActivityStreamsTo(to)

	return c
}
