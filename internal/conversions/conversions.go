// Package conversions maps domain records to ActivityStreams documents and back.
// All functions are pure; the ids they emit are byte-identical to the urls the
// HTTP surface serves for the same resources.
package conversions

import (
	"errors"
	"fmt"
	"net/url"

	"code.superseriousbusiness.org/activity/streams"
	"code.superseriousbusiness.org/activity/streams/vocab"
	"github.com/sidereusnuntius/microblog/internal/domain"
	"github.com/sidereusnuntius/microblog/internal/utils"
)

var (
	ErrMissingProperty        = errors.New("missing property")
	ErrUnprocessablePropValue = errors.New("unprocessable property value")
)

// UserToActor maps a user and their public key to a Person actor document.
func UserToActor(u domain.UserFed) vocab.Type {
	a := streams.NewActivityStreamsPerson()

	id := streams.NewJSONLDIdProperty()
	id.SetIRI(u.ApId)
	a.SetJSONLDId(id)

	username := streams.NewActivityStreamsPreferredUsernameProperty()
	username.SetXMLSchemaString(u.Username)
	a.SetActivityStreamsPreferredUsername(username)

	name := streams.NewActivityStreamsNameProperty()
	if u.Name != "" {
		name.AppendXMLSchemaString(u.Name)
	} else {
		name.AppendXMLSchemaString(u.Username)
	}
	a.SetActivityStreamsName(name)

	if u.URL != nil {
		iri := streams.NewActivityStreamsUrlProperty()
		iri.AppendIRI(u.URL)
		a.SetActivityStreamsUrl(iri)
	}

	inbox := streams.NewActivityStreamsInboxProperty()
	inbox.SetIRI(u.Inbox)
	a.SetActivityStreamsInbox(inbox)

	if u.SharedInbox != nil {
		endpoints := streams.NewActivityStreamsEndpointsProperty()
		e := streams.NewActivityStreamsEndpoints()
		shared := streams.NewActivityStreamsSharedInboxProperty()
		shared.SetIRI(u.SharedInbox)
		e.SetActivityStreamsSharedInbox(shared)
		endpoints.AppendActivityStreamsEndpoints(e)
		a.SetActivityStreamsEndpoints(endpoints)
	}

	if !u.Created.IsZero() {
		created := streams.NewActivityStreamsPublishedProperty()
		created.Set(u.Created)
		a.SetActivityStreamsPublished(created)
	}

	a.SetW3IDSecurityV1PublicKey(PublicKeyProp(u.ApId, u.Key.PublicKeyPem))

	return a
}

func PublicKeyProp(owner *url.URL, publicKeyPem string) vocab.W3IDSecurityV1PublicKeyProperty {
	keyProp := streams.NewW3IDSecurityV1PublicKeyProperty()
	key := streams.NewW3IDSecurityV1PublicKey()

	ownerProp := streams.NewW3IDSecurityV1OwnerProperty()
	ownerProp.SetIRI(owner)

	keyURIProp := streams.NewJSONLDIdProperty()
	keyURIProp.SetIRI(utils.KeyId(owner))

	pemProp := streams.NewW3IDSecurityV1PublicKeyPemProperty()
	pemProp.Set(publicKeyPem)

	key.SetJSONLDId(keyURIProp)
	key.SetW3IDSecurityV1Owner(ownerProp)
	key.SetW3IDSecurityV1PublicKeyPem(pemProp)

	keyProp.AppendW3IDSecurityV1PublicKey(key)
	return keyProp
}

// ActorToUser converts a fetched remote Person into a user record ready for the
// store. The inbox is the one property delivery cannot do without.
func ActorToUser(a vocab.ActivityStreamsPerson) (u domain.UserFed, err error) {
	idProp := a.GetJSONLDId()
	if idProp == nil {
		err = fmt.Errorf("%w: id", ErrMissingProperty)
		return
	}
	id := idProp.Get()
	u.ApId = id
	u.Host = id.Host

	if name := a.GetActivityStreamsName(); name != nil && name.Len() != 0 {
		u.Name = name.Begin().GetXMLSchemaString()
	}

	if username := a.GetActivityStreamsPreferredUsername(); username != nil {
		u.Username = username.GetXMLSchemaString()
	}
	if u.Username == "" {
		err = fmt.Errorf("%w: preferredUsername", ErrMissingProperty)
		return
	}

	if url := a.GetActivityStreamsUrl(); url != nil && url.Len() != 0 {
		u.URL = url.Begin().GetIRI()
	} else {
		u.URL = id
	}

	inbox := a.GetActivityStreamsInbox()
	if inbox == nil {
		err = fmt.Errorf("%w: inbox", ErrMissingProperty)
		return
	}
	if !inbox.IsIRI() {
		err = fmt.Errorf("%w: inbox", ErrUnprocessablePropValue)
		return
	}
	u.Inbox = inbox.GetIRI()

	if endpoints := a.GetActivityStreamsEndpoints(); endpoints != nil && endpoints.Len() != 0 {
		if e := endpoints.Begin().Get(); e != nil {
			if shared := e.GetActivityStreamsSharedInbox(); shared != nil && shared.IsIRI() {
				u.SharedInbox = shared.GetIRI()
			}
		}
	}

	if key := a.GetW3IDSecurityV1PublicKey(); key != nil && key.Len() != 0 {
		k := key.Begin().Get()
		if keyPem := k.GetW3IDSecurityV1PublicKeyPem(); keyPem != nil {
			u.Key.PublicKeyPem = keyPem.Get()
			u.Key.KeyType = utils.KeyTypeRsa
		}
		if keyId := k.GetJSONLDId(); keyId != nil {
			u.Key.ID = keyId.Get().String()
		}
	}

	return
}
