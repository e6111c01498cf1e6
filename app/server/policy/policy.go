package policy

import "blog-core/app/server/models"

// CanModify 判断当前用户能否修改（编辑、删除）某个资源：本人或管理员
// 所有涉及文章和用户的写操作都必须先过这里，不允许旁路
func CanModify(actorID uint, ownerID uint, actorIsAdmin bool) bool {
	return actorID == ownerID || actorIsAdmin
}

// CanDeleteUser 判断某个用户能否被删除：管理员账户绝对不可删除，无论操作者是谁
func CanDeleteUser(target *models.User) bool {
	return !target.IsAdmin
}
