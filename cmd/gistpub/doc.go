// Gistpub updates one file of a GitHub gist with the given content.
//
//	GIST_TOKEN=... gistpub --gist-id f00d --actor octocat --file-content '{"version":"1.2.3"}'
//
// The file is chosen from the actor: a few actors publish to an unstable file,
// everybody else to the stable one (see publish.ResolveFileName). The token must
// be allowed to edit the gist; it is sent as a bearer token.
//
// Exactly one PATCH request is sent. The command exits 0 if the API answers
// 200, and 1 otherwise, after printing the status code and the response body.
// It also exits 1, without sending anything, if the token or any of the flags
// is missing.
//
// An optional configuration file (--config) can override the API endpoint and
// turn on debug logging:
//
//	{
//		api_url: "https://github.example.com/api/v3/"
//		debug: true
//	}
package main // import "github.com/nicolagi/metapub/cmd/gistpub"
