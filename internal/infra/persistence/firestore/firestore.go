// Package firestore contains the concrete implementation of the persistence layer on Cloud Firestore.
package firestore

import (
	"strings"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// docRef resolves id inside collection, reporting false for ids that cannot name a document.
func docRef(client *fs.Client, collection, id string) (*fs.DocumentRef, bool) {
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		return nil, false
	}

	ref := client.Collection(collection).Doc(id)

	return ref, ref != nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
