package eshop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eshop-catalog/core/utils"
)

// Region identifies a regional storefront.
type Region string

const (
	// RegionAmericas is the first region merged into the catalog.
	RegionAmericas Region = "americas"
	// RegionEurope is merged on top of the Americas records.
	RegionEurope Region = "europe"
)

// Regions lists the supported regions in merge order.
var Regions = []Region{RegionAmericas, RegionEurope}

// ErrUnknownRegion is returned for regions other than Americas and Europe.
var ErrUnknownRegion = errors.New("unknown region")

func (r Region) String() string {
	return string(r)
}

// Provider is the storefront data source.
type Provider interface {
	// FetchGames returns every catalog record of a region.
	FetchGames(ctx context.Context, region Region) ([]RawGame, error)
	// FetchPrices returns the prices of the given nsuids in a country.
	// Titles the storefront does not price are simply absent from the result.
	FetchPrices(ctx context.Context, region Region, country string, nsuids []string) ([]Price, error)
}

// RawGame is a storefront record normalized to a common shape but not yet
// resolved: codes, nsuids and dates are kept exactly as the feed sent them.
type RawGame struct {
	Region Region
	// ID is the storefront id (Americas "id", Europe "fs_id").
	ID    string
	Title string
	// Art is the main cover (Americas "front_box_art", Europe "image_url").
	Art string
	// SquareArt is the small square cover (Europe "image_url_sq_s").
	SquareArt   string
	ReleaseDate string
	NSUID       string
	// ProductCode is the raw code the cross-region code is parsed from
	// (Americas "game_code", Europe first "product_code_txt").
	ProductCode string
}

// Price is one entry of the price endpoint. Only the title id is interpreted;
// the body is passed through to API clients unchanged.
type Price struct {
	TitleID string
	Body    json.RawMessage
}

// UnmarshalJSON keeps the raw entry and extracts its title_id.
func (p *Price) UnmarshalJSON(data []byte) error {
	var head struct {
		TitleID any `json:"title_id"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&head); err != nil {
		return fmt.Errorf("failed to decode price: %w", err)
	}
	p.TitleID = utils.ToString(head.TitleID)
	p.Body = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the entry back out as it was received.
func (p Price) MarshalJSON() ([]byte, error) {
	if len(p.Body) == 0 {
		return json.Marshal(map[string]string{"title_id": p.TitleID})
	}
	return p.Body, nil
}

// americasGame is one element of the Americas listing.
type americasGame struct {
	ID          any    `json:"id"`
	Title       string `json:"title"`
	FrontBoxArt string `json:"front_box_art"`
	ReleaseDate string `json:"release_date"`
	NSUID       any    `json:"nsuid"`
	GameCode    string `json:"game_code"`
}

type americasResponse struct {
	Filter struct {
		Total int `json:"total"`
	} `json:"filter"`
	Games struct {
		Game []americasGame `json:"game"`
	} `json:"games"`
}

func (g americasGame) raw() RawGame {
	return RawGame{
		Region:      RegionAmericas,
		ID:          utils.ToString(g.ID),
		Title:       g.Title,
		Art:         g.FrontBoxArt,
		ReleaseDate: g.ReleaseDate,
		NSUID:       utils.FirstString(g.NSUID),
		ProductCode: g.GameCode,
	}
}

// europeGame is one Solr document of the Europe search.
type europeGame struct {
	FsID          any    `json:"fs_id"`
	Title         string `json:"title"`
	ImageURL      string `json:"image_url"`
	ImageURLSqS   string `json:"image_url_sq_s"`
	DatesReleased any    `json:"dates_released_dts"`
	NSUIDs        any    `json:"nsuid_txt"`
	ProductCodes  any    `json:"product_code_txt"`
}

type europeResponse struct {
	Response struct {
		NumFound int          `json:"numFound"`
		Docs     []europeGame `json:"docs"`
	} `json:"response"`
}

func (g europeGame) raw() RawGame {
	return RawGame{
		Region:      RegionEurope,
		ID:          utils.ToString(g.FsID),
		Title:       g.Title,
		Art:         g.ImageURL,
		SquareArt:   g.ImageURLSqS,
		ReleaseDate: utils.FirstString(g.DatesReleased),
		NSUID:       utils.FirstString(g.NSUIDs),
		ProductCode: utils.FirstString(g.ProductCodes),
	}
}

type priceResponse struct {
	Country string  `json:"country"`
	Prices  []Price `json:"prices"`
}
