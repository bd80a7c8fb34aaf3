package shared

import "context"

// Asset is one stored image in the external image store.
type Asset struct {
	URL     string
	AssetID string
}

// AssetStore abstracts the external image host for payment receipts,
// refund QR codes and refund proofs. Uploads run outside database
// transactions and cannot be rolled back: every upload-then-persist
// path deletes the asset on a later persistence failure.
type AssetStore interface {
	Upload(ctx context.Context, dataURI, folder string) (Asset, error)
	Delete(ctx context.Context, assetID string) error
}
