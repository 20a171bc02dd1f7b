package utils

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
)

const KeyTypeRsa = "RSA"

var mainKey, _ = url.Parse("#main-key")

// KeyId derives the identifier URI of an actor's key from the actor's own IRI.
func KeyId(actor *url.URL) *url.URL {
	return actor.ResolveReference(mainKey)
}

// GenerateKeyPair produces the RSA key material for a new local actor. The public
// key is encoded as SPKI PEM and the private key as unencrypted PKCS8 PEM; remote
// servers parse the public half to verify signatures, so the encoding is part of
// the wire contract.
func GenerateKeyPair(actor *url.URL, size int) (id, pub, priv string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, size)
	if err != nil {
		return
	}

	priv, err = privateKeyPem(key)
	if err != nil {
		return
	}

	pub, err = publicKeyPem(&key.PublicKey)
	if err != nil {
		return
	}

	id = KeyId(actor).String()
	return
}

func privateKeyPem(key *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", err
	}

	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	})), nil
}

func publicKeyPem(key *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	})), err
}

// ParsePrivateKeyPem decodes the stored PKCS8 PEM back into a signing key.
func ParsePrivateKeyPem(pemStr string) (crypto.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("unsupported type: %s", block.Type)
	}
	return x509.ParsePKCS8PrivateKey(block.Bytes)
}

// ParsePublicKeyPem accepts both the SPKI encoding this instance produces and the
// PKCS1 encoding some older servers still publish.
func ParsePublicKeyPem(pemStr string) (crypto.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	switch block.Type {
	case "PUBLIC KEY":
		return x509.ParsePKIXPublicKey(block.Bytes)
	case "RSA PUBLIC KEY":
		return x509.ParsePKCS1PublicKey(block.Bytes)
	default:
		return nil, fmt.Errorf("unsupported type: %s", block.Type)
	}
}
