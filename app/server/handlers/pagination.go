package handlers

import "strconv"

const defaultPageLimit = 20

type PageResponse[T any] struct {
	Limit   int   `json:"limit"`
	PageMax int64 `json:"pageMax"`
	Total   int64 `json:"total"`
	List    []T   `json:"list"`
}

// parsePagination 页码从 1 开始；page=0&limit=0 表示展示全部
func (a *App) parsePagination(pageStr, limitStr string) (showAll bool, page int, limit int) {
	rawPage, pageErr := strconv.Atoi(pageStr)
	rawLimit, limitErr := strconv.Atoi(limitStr)

	if pageErr == nil && limitErr == nil && rawPage == 0 && rawLimit == 0 {
		// 特殊参数：展示全部
		return true, -1, -1
	}

	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不变
	if pageErr != nil || rawPage < 1 {
		page = 0
	} else {
		page = rawPage - 1
	}

	if limitErr != nil || rawLimit <= 0 {
		limit = defaultPageLimit
	} else {
		limit = min(rawLimit, 100)
	}

	return false, page, limit
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	}
	pageMax := count / int64(limit)
	if (count % int64(limit)) != 0 {
		pageMax++
	}
	return pageMax
}
