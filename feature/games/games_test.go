package games_test

import (
	"encoding/json"

	"eshop-catalog/core/eshop"
)

func americasGame(id, title, code, nsuid, date string) eshop.RawGame {
	return eshop.RawGame{
		Region:      eshop.RegionAmericas,
		ID:          id,
		Title:       title,
		Art:         "https://a.example/" + id + ".jpg",
		ReleaseDate: date,
		NSUID:       nsuid,
		ProductCode: code,
	}
}

func europeGame(id, title, code, nsuid, date string) eshop.RawGame {
	return eshop.RawGame{
		Region:      eshop.RegionEurope,
		ID:          id,
		Title:       title,
		Art:         "https://e.example/" + id + ".jpg",
		ReleaseDate: date,
		NSUID:       nsuid,
		ProductCode: code,
	}
}

func price(titleID string, amount string) eshop.Price {
	return eshop.Price{
		TitleID: titleID,
		Body:    json.RawMessage(`{"title_id":` + titleID + `,"regular_price":{"amount":"` + amount + `"}}`),
	}
}
