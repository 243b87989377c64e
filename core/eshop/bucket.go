package eshop

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"eshop-catalog/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketProvider serves catalogs and prices from storefront responses
// mirrored into object storage:
//
//	<prefix>/games/americas.json   Americas listing response
//	<prefix>/games/europe.json     Europe search response
//	<prefix>/prices/<COUNTRY>.json price endpoint response
type BucketProvider struct {
	client storage.Client
	bucket string
	prefix string

	checkOnce sync.Once
	checkErr  error
}

// NewBucketProvider creates a provider reading mirrored feeds from a bucket.
func NewBucketProvider(client storage.Client, bucket, prefix string) *BucketProvider {
	return &BucketProvider{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// FetchGames reads the mirrored listing of a region.
func (p *BucketProvider) FetchGames(ctx context.Context, region Region) ([]RawGame, error) {
	if err := p.checkBucket(ctx); err != nil {
		return nil, err
	}

	objectName := path.Join(p.prefix, "games", region.String()+".json")
	var games []RawGame
	switch region {
	case RegionAmericas:
		var res americasResponse
		if err := p.read(ctx, objectName, &res); err != nil {
			return nil, err
		}
		for _, g := range res.Games.Game {
			games = append(games, g.raw())
		}
	case RegionEurope:
		var res europeResponse
		if err := p.read(ctx, objectName, &res); err != nil {
			return nil, err
		}
		for _, g := range res.Response.Docs {
			games = append(games, g.raw())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	return games, nil
}

// FetchPrices reads the mirrored price list of a country and keeps the requested ids.
func (p *BucketProvider) FetchPrices(ctx context.Context, region Region, country string, nsuids []string) ([]Price, error) {
	if region != RegionAmericas && region != RegionEurope {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	if len(nsuids) == 0 {
		return nil, nil
	}
	if err := p.checkBucket(ctx); err != nil {
		return nil, err
	}

	var res priceResponse
	objectName := path.Join(p.prefix, "prices", strings.ToUpper(country)+".json")
	if err := p.read(ctx, objectName, &res); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(nsuids))
	for _, id := range nsuids {
		wanted[id] = struct{}{}
	}

	prices := make([]Price, 0, len(nsuids))
	for _, price := range res.Prices {
		if _, ok := wanted[price.TitleID]; ok {
			prices = append(prices, price)
		}
	}
	return prices, nil
}

func (p *BucketProvider) checkBucket(ctx context.Context) error {
	p.checkOnce.Do(func() {
		exists, err := p.client.BucketExists(ctx, p.bucket)
		if err != nil {
			p.checkErr = fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
			return
		}
		if !exists {
			p.checkErr = fmt.Errorf("bucket %s does not exist", p.bucket)
		}
	})
	return p.checkErr
}

func (p *BucketProvider) read(ctx context.Context, objectName string, target any) error {
	obj, err := p.client.GetObject(ctx, p.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer obj.Close()

	dec := json.NewDecoder(obj)
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", objectName, err)
	}
	return nil
}
