package client

import (
	"bytes"
	"context"
	"crypto"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"code.superseriousbusiness.org/activity/pub"
	"code.superseriousbusiness.org/activity/streams"
	"code.superseriousbusiness.org/activity/streams/vocab"
	"code.superseriousbusiness.org/httpsig"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/utils"
)

const UserAgent = "microblog"

var prefs = []httpsig.Algorithm{httpsig.RSA_SHA256}
var getHeaders = []string{httpsig.RequestTarget, "host", "date"}
var postHeaders = []string{httpsig.RequestTarget, "host", "date", "digest"}

// HttpClient performs signed outbound requests. Requests made on behalf of a
// particular user are signed with that user's stored key; everything else falls
// back to the instance key given at construction.
type HttpClient struct {
	db              db.DB
	client          *http.Client
	key             crypto.PrivateKey
	pubKeyId        *url.URL
	getSigner       httpsig.Signer
	getSignerMutex  sync.Mutex
	postSigner      httpsig.Signer
	postSignerMutex sync.Mutex
}

func New(db db.DB, client *http.Client, key crypto.PrivateKey, prefs []httpsig.Algorithm, keyId *url.URL) (*HttpClient, error) {
	getSigner, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, getHeaders, httpsig.Signature, 3600)
	if err != nil {
		return nil, err
	}

	postSigner, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, postHeaders, httpsig.Signature, 3600)
	if err != nil {
		return nil, err
	}

	return &HttpClient{
		db:         db,
		client:     client,
		key:        key,
		pubKeyId:   keyId,
		getSigner:  getSigner,
		postSigner: postSigner,
	}, nil
}

// Get dereferences an IRI and decodes the response into an ActivityStreams type.
func (c *HttpClient) Get(ctx context.Context, iri *url.URL) (obj vocab.Type, err error) {
	res, err := c.Dereference(ctx, iri)
	if err != nil {
		return
	}
	defer res.Body.Close()

	decoder := json.NewDecoder(res.Body)
	var props map[string]any
	err = decoder.Decode(&props)
	if err != nil {
		log.Error().Err(err).Msg("response body unmarshaling error")
		return
	}

	obj, err = streams.ToType(ctx, props)
	return
}

func (c *HttpClient) Dereference(ctx context.Context, iri *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iri.String(), nil)
	if err != nil {
		return nil, err
	}

	c.getSignerMutex.Lock()
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	req.Header.Set("Accept", "application/activity+json")
	req.Header.Set("User-Agent", UserAgent)
	err = c.getSigner.SignRequest(c.key, c.pubKeyId.String(), req, nil)
	c.getSignerMutex.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("error while signing request")
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= http.StatusBadRequest {
		content, _ := io.ReadAll(res.Body)
		res.Body.Close()
		log.Error().Str("status", res.Status).Bytes("response", content).Msg("fetch error")
		err = fmt.Errorf("%d %s: %s", res.StatusCode, res.Status, content)
	}

	return res, err
}

// DeliverAs posts the serialized activity to the target inbox, signed with the key
// of the actor it originates from. An instance-level sender (path "/" or empty)
// falls back to the instance key.
func (c *HttpClient) DeliverAs(ctx context.Context, obj map[string]any, to *url.URL, from *url.URL) error {
	if path := from.Path; path == "" || path == "/" {
		return c.Deliver(ctx, obj, to)
	}

	key, err := c.db.GetUserPrivateKeyByURI(ctx, from)
	if err != nil {
		log.Error().Err(err).Str("actor", from.String()).Msg("user's private key not found")
		return err
	}

	signer, _, err := httpsig.NewSigner(prefs, httpsig.DigestSha256, postHeaders, httpsig.Signature, 3600)
	if err != nil {
		log.Error().Err(err).Msg("failed to construct signer")
		return err
	}

	transport := pub.NewHttpSigTransport(c.client, UserAgent, c, nil, signer, utils.KeyId(from).String(), key)
	return transport.Deliver(ctx, obj, to)
}

// Deliver signs the request with the instance key and posts it to the target inbox.
func (c *HttpClient) Deliver(ctx context.Context, obj map[string]any, to *url.URL) error {
	body, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, to.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/activity+json")
	req.Header.Set("User-Agent", UserAgent)

	c.postSignerMutex.Lock()
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	err = c.postSigner.SignRequest(c.key, c.pubKeyId.String(), req, body)
	c.postSignerMutex.Unlock()
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(res.Body)
		log.Error().Int("code", res.StatusCode).Bytes("response body", body).Msg("delivery error")
		return fmt.Errorf("error %d: %s", res.StatusCode, res.Status)
	}
	return nil
}

func (c *HttpClient) Now() time.Time {
	return time.Now()
}
