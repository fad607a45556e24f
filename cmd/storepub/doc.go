// Storepub replaces a document of a JSON storage service.
//
//	storepub --storage-id abc123 --file-content '{"version":"1.2.3"}'
//
// The document is sent with a PUT to the service base URL followed by the
// storage id, wrapped as {"data": <content>, "source": "GitHub Actions"}. No
// credentials are needed. The command exits 0 if the service answers 200, and
// 1 otherwise, after printing the status code and the response body.
package main // import "github.com/nicolagi/metapub/cmd/storepub"
